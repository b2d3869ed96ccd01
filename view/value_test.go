package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbdata/encoding"
	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

func TestOpenValue_Errors(t *testing.T) {
	_, err := OpenValue(nil, 0)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)

	_, err = OpenValue([]byte{0x00}, 1)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)

	_, err = OpenValue([]byte{0x0a}, 0)
	require.ErrorIs(t, err, errs.ErrUnknownTag)

	_, err = OpenValue([]byte{0xff}, 0)
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}

func TestValue_Predicates(t *testing.T) {
	tests := []struct {
		buf  []byte
		kind format.ValueType
		pred func(Value) bool
	}{
		{encoding.AppendNull(nil), format.TypeNull, Value.IsNull},
		{encoding.AppendBool(nil, true), format.TypeBoolean, Value.IsBoolean},
		{encoding.AppendInt32(nil, 1), format.TypeInteger, Value.IsNumber},
		{encoding.AppendInt64(nil, 1), format.TypeLong, Value.IsNumber},
		{encoding.AppendFloat32(nil, 1), format.TypeFloat, Value.IsNumber},
		{encoding.AppendFloat64(nil, 1), format.TypeDouble, Value.IsNumber},
		{encoding.AppendString(nil, "s"), format.TypeString, Value.IsString},
		{encoding.AppendBytes(nil, []byte{1}), format.TypeBytes, Value.IsBytes},
		{encoding.AppendInt32Array(encoding.AppendArrayValue(nil), nil), format.TypeArray, Value.IsArray},
		{encoding.AppendValueMap(nil, nil, nil), format.TypeValueMap, Value.IsValueMap},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v, err := OpenValue(tt.buf, 0)
			require.NoError(t, err)
			require.Equal(t, tt.kind, v.Kind())
			require.True(t, tt.pred(v))
			require.Equal(t, 0, v.Offset())
		})
	}
}

func TestValue_NumericCoercion(t *testing.T) {
	v, err := OpenValue(encoding.AppendFloat64(nil, 7.9), 0)
	require.NoError(t, err)

	i32, err := v.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), i32)

	f32, err := v.AsFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(7.9), f32)

	v, err = OpenValue(encoding.AppendInt32(nil, -3), 0)
	require.NoError(t, err)
	f64, err := v.AsFloat64()
	require.NoError(t, err)
	require.Equal(t, -3.0, f64)

	_, err = v.AsString()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = v.AsBool()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = v.AsArray()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = v.AsValueMap()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestValue_StringAndBytes(t *testing.T) {
	v, err := OpenValue(encoding.AppendString(nil, "hello"), 0)
	require.NoError(t, err)
	s, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	_, err = v.AsBytes()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = v.AsInt64()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)

	buf := encoding.AppendBytes(nil, []byte{1, 2, 3})
	v, err = OpenValue(buf, 0)
	require.NoError(t, err)
	b, err := v.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)

	// AsBytes aliases the buffer and cannot grow into it.
	require.Equal(t, 3, cap(b))
	buf[5] = 9
	require.Equal(t, byte(9), b[0])
}

func TestValue_TruncatedNumber(t *testing.T) {
	buf := encoding.AppendInt64(nil, 1)
	v, err := OpenValue(buf[:5], 0)
	require.NoError(t, err)

	_, err = v.AsInt64()
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestValue_NestedArray(t *testing.T) {
	buf := encoding.AppendStringArray(encoding.AppendArrayValue(nil), []string{"abc", "de"})
	require.Equal(t, stringArrayValue, buf)

	v, err := OpenValue(buf, 0)
	require.NoError(t, err)

	arr, err := v.AsArray()
	require.NoError(t, err)
	require.Equal(t, 1, arr.Offset())
	require.Equal(t, 2, arr.Len())

	_, err = v.AsString()
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestValue_ArrayCollapsesToScalar(t *testing.T) {
	buf := encoding.AppendBoolArray(encoding.AppendArrayValue(nil), []bool{true})
	v, err := OpenValue(buf, 0)
	require.NoError(t, err)

	b, err := v.AsBool()
	require.NoError(t, err)
	require.True(t, b)

	buf = encoding.AppendFloat64Array(encoding.AppendArrayValue(nil), []float64{2.5})
	v, err = OpenValue(buf, 0)
	require.NoError(t, err)

	f, err := v.AsFloat64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)
}

func TestValue_BooleanFromPackedArray(t *testing.T) {
	arr := openArray(t, encoding.AppendBoolArray(nil, []bool{false, false, false, false, false, false, false, false, true}))

	v, err := arr.Get(8)
	require.NoError(t, err)
	require.True(t, v.IsBoolean())
	require.Equal(t, 6, v.Offset())

	b, err := v.AsBool()
	require.NoError(t, err)
	require.True(t, b)
}
