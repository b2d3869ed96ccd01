package format

import (
	"testing"

	"github.com/arloliu/bbdata/errs"
	"github.com/stretchr/testify/require"
)

func TestParseElementType(t *testing.T) {
	tests := []struct {
		code byte
		want ElementType
		name string
	}{
		{0x01, ElementBoolean, "Boolean"},
		{0x02, ElementInteger, "Integer"},
		{0x03, ElementLong, "Long"},
		{0x04, ElementFloat, "Float"},
		{0x05, ElementDouble, "Double"},
		{0x06, ElementString, "String"},
		{0x07, ElementValue, "Value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseElementType(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.name, got.String())
		})
	}
}

func TestParseElementType_Unknown(t *testing.T) {
	for _, code := range []byte{0x00, 0x08, 0x7f, 0xff} {
		_, err := ParseElementType(code)
		require.ErrorIs(t, err, errs.ErrUnknownTag)
	}
}

func TestElementType_ScalarKind(t *testing.T) {
	require := require.New(t)

	pairs := map[ElementType]ValueType{
		ElementBoolean: TypeBoolean,
		ElementInteger: TypeInteger,
		ElementLong:    TypeLong,
		ElementFloat:   TypeFloat,
		ElementDouble:  TypeDouble,
		ElementString:  TypeString,
	}
	for elem, want := range pairs {
		got, ok := elem.ScalarKind()
		require.True(ok, elem.String())
		require.Equal(want, got)
	}

	_, ok := ElementValue.ScalarKind()
	require.False(ok)
}

func TestElementType_SlotWidth(t *testing.T) {
	require.Equal(t, 4, ElementInteger.SlotWidth())
	require.Equal(t, 4, ElementFloat.SlotWidth())
	require.Equal(t, 8, ElementLong.SlotWidth())
	require.Equal(t, 8, ElementDouble.SlotWidth())
	require.Equal(t, 0, ElementBoolean.SlotWidth())
	require.Equal(t, 0, ElementString.SlotWidth())
	require.Equal(t, 0, ElementValue.SlotWidth())
}

func TestParseValueType(t *testing.T) {
	for code := byte(0); code <= byte(TypeValueMap); code++ {
		vt, err := ParseValueType(code)
		require.NoError(t, err)
		require.NotEqual(t, "Unknown", vt.String())
	}

	_, err := ParseValueType(0x0a)
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestNumericKinds(t *testing.T) {
	require.True(t, ElementDouble.IsNumeric())
	require.False(t, ElementString.IsNumeric())
	require.True(t, TypeLong.IsNumeric())
	require.False(t, TypeBytes.IsNumeric())
	require.False(t, TypeArray.IsNumeric())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}
