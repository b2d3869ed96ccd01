package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
	"github.com/arloliu/bbdata/view"
)

func TestEncoder_NewEncoder(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())
	require.Empty(t, enc.Bytes())
}

func TestEncoder_ScalarSequence(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	enc.WriteNull()
	enc.WriteBool(true)
	enc.WriteInt32(-7)
	enc.WriteInt64(1 << 40)
	enc.WriteFloat32(1.5)
	enc.WriteFloat64(2.75)
	require.NoError(t, enc.WriteString("abc"))
	require.NoError(t, enc.WriteBytes([]byte{1, 2}))

	require.Equal(t, 8, enc.Len())

	buf := enc.Bytes()
	pos := 0
	next := func() view.Value {
		v, err := view.OpenValue(buf, pos)
		require.NoError(t, err)
		return v
	}

	v := next()
	require.True(t, v.IsNull())
	pos += 1

	v = next()
	b, err := v.AsBool()
	require.NoError(t, err)
	require.True(t, b)
	pos += 2

	v = next()
	i32, err := v.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-7), i32)
	pos += 5

	v = next()
	i64, err := v.AsInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1<<40), i64)
	pos += 9

	v = next()
	f32, err := v.AsFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)
	pos += 5

	v = next()
	f64, err := v.AsFloat64()
	require.NoError(t, err)
	require.Equal(t, 2.75, f64)
	pos += 9

	v = next()
	s, err := v.AsString()
	require.NoError(t, err)
	require.Equal(t, "abc", s)
	pos += 8

	v = next()
	raw, err := v.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, raw)
	pos += 7

	require.Equal(t, len(buf), pos)
}

func TestEncoder_ArrayRoundTrip(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	require.NoError(t, enc.WriteStringArray([]string{"x", "", "yz"}))

	v, err := view.OpenValue(enc.Bytes(), 0)
	require.NoError(t, err)
	require.True(t, v.IsArray())

	arr, err := v.AsArray()
	require.NoError(t, err)
	require.Equal(t, format.ElementString, arr.ElementType())

	got, err := arr.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"x", "", "yz"}, got)
}

func TestEncoder_ValueArrayOfMixedBodies(t *testing.T) {
	s, err := Value(func(e *Encoder) error { return e.WriteString("abc") })
	require.NoError(t, err)
	n, err := Value(func(e *Encoder) error { e.WriteInt64(42); return nil })
	require.NoError(t, err)
	nested, err := Value(func(e *Encoder) error { return e.WriteInt32Array([]int32{9}) })
	require.NoError(t, err)

	enc := NewEncoder()
	defer enc.Finish()
	require.NoError(t, enc.WriteValueArray([][]byte{s, n, nested}))

	root, err := view.OpenValue(enc.Bytes(), 0)
	require.NoError(t, err)
	arr, err := root.AsArray()
	require.NoError(t, err)
	require.Equal(t, 3, arr.Len())

	e2, err := arr.Get(2)
	require.NoError(t, err)
	require.True(t, e2.IsArray())
	got, err := e2.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(9), got)
}

func TestEncoder_WriteValueMap(t *testing.T) {
	one, err := Value(func(e *Encoder) error { e.WriteInt32(1); return nil })
	require.NoError(t, err)
	two, err := Value(func(e *Encoder) error { return e.WriteString("two") })
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		enc := NewEncoder()
		defer enc.Finish()
		require.NoError(t, enc.WriteValueMap([]string{"a", "b"}, [][]byte{one, two}))

		v, err := view.OpenValue(enc.Bytes(), 0)
		require.NoError(t, err)
		m, err := v.AsValueMap()
		require.NoError(t, err)

		keys, err := m.Keys()
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, keys)

		got, ok, err := m.Get("b")
		require.NoError(t, err)
		require.True(t, ok)
		s, err := got.AsString()
		require.NoError(t, err)
		require.Equal(t, "two", s)
	})

	t.Run("duplicate key", func(t *testing.T) {
		enc := NewEncoder()
		defer enc.Finish()

		err := enc.WriteValueMap([]string{"a", "a"}, [][]byte{one, two})
		require.ErrorIs(t, err, errs.ErrDuplicateKey)
		require.Equal(t, 0, enc.Size())
	})

	t.Run("length mismatch", func(t *testing.T) {
		enc := NewEncoder()
		defer enc.Finish()

		require.Error(t, enc.WriteValueMap([]string{"a"}, nil))
		require.Equal(t, 0, enc.Len())
	})
}

func TestEncoder_ResetAndFinish(t *testing.T) {
	enc := NewEncoder()
	enc.WriteInt32(1)
	require.Equal(t, 5, enc.Size())

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())

	enc.WriteBool(false)
	require.Equal(t, []byte{byte(format.TypeBoolean), 0}, enc.Bytes())

	enc.Finish()
	require.Nil(t, enc.Bytes())
	require.Panics(t, func() { enc.WriteNull() })

	// Finish is idempotent.
	require.NotPanics(t, enc.Finish)
}

func TestValue_RequiresExactlyOne(t *testing.T) {
	_, err := Value(func(e *Encoder) error { return nil })
	require.Error(t, err)

	_, err = Value(func(e *Encoder) error {
		e.WriteNull()
		e.WriteNull()
		return nil
	})
	require.Error(t, err)
}

func TestCheckLength(t *testing.T) {
	require.NoError(t, checkLength("x", 0))
	require.NoError(t, checkLength("x", 1<<31-1))
	require.ErrorIs(t, checkLength("x", 1<<31), errs.ErrLengthOverflow)
}
