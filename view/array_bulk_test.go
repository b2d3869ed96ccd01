package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bbdata/encoding"
	"github.com/arloliu/bbdata/errs"
)

func openArray(t testing.TB, buf []byte) Array {
	t.Helper()

	arr, err := OpenArray(buf, 0)
	require.NoError(t, err)

	return arr
}

func TestArray_Bools(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 64} {
		vals := make([]bool, n)
		for i := range vals {
			vals[i] = i%3 == 0 || i == n-1
		}

		arr := openArray(t, encoding.AppendBoolArray(nil, vals))
		require.Equal(t, n, arr.Len())

		got, err := arr.Bools()
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, vals, got, "n=%d", n)

		for i, want := range vals {
			v, err := arr.Get(i)
			require.NoError(t, err)
			b, err := v.AsBool()
			require.NoError(t, err)
			require.Equal(t, want, b, "n=%d index=%d", n, i)
		}
	}
}

func TestArray_BoolsBitOrder(t *testing.T) {
	// 0x06 sets bits 1 and 2.
	arr := openArray(t, []byte{0x01, 0, 0, 0, 3, 0x06})

	got, err := arr.Bools()
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, got)
}

func TestArray_NumericAccessors(t *testing.T) {
	t.Run("int32 as every width", func(t *testing.T) {
		arr := openArray(t, encoding.AppendInt32Array(nil, []int32{-1, 0, math.MaxInt32}))

		i32, err := arr.Int32s()
		require.NoError(t, err)
		require.Equal(t, []int32{-1, 0, math.MaxInt32}, i32)

		i64, err := arr.Int64s()
		require.NoError(t, err)
		require.Equal(t, []int64{-1, 0, math.MaxInt32}, i64)

		f64, err := arr.Float64s()
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 0, math.MaxInt32}, f64)
	})

	t.Run("double truncates to int", func(t *testing.T) {
		arr := openArray(t, encoding.AppendFloat64Array(nil, []float64{1.9, -2.5}))

		got, err := arr.Int64s()
		require.NoError(t, err)
		require.Equal(t, []int64{1, -2}, got)

		f32, err := arr.Float32s()
		require.NoError(t, err)
		require.Equal(t, []float32{1.9, -2.5}, f32)
	})

	t.Run("float32", func(t *testing.T) {
		arr := openArray(t, encoding.AppendFloat32Array(nil, []float32{0.5, 3}))

		got, err := arr.Float32s()
		require.NoError(t, err)
		require.Equal(t, []float32{0.5, 3}, got)
	})

	t.Run("long", func(t *testing.T) {
		arr := openArray(t, encoding.AppendInt64Array(nil, []int64{math.MinInt64, 1 << 40}))

		got, err := arr.Int64s()
		require.NoError(t, err)
		require.Equal(t, []int64{math.MinInt64, 1 << 40}, got)
	})

	t.Run("empty", func(t *testing.T) {
		arr := openArray(t, encoding.AppendFloat64Array(nil, nil))

		got, err := arr.Float64s()
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("value array of numbers", func(t *testing.T) {
		arr := openArray(t, encoding.AppendValueArray(nil, [][]byte{
			encoding.AppendInt32(nil, 3),
			encoding.AppendFloat64(nil, 4.5),
			encoding.AppendInt64(nil, 5),
		}))

		got, err := arr.Float64s()
		require.NoError(t, err)
		require.Equal(t, []float64{3, 4.5, 5}, got)
	})

	t.Run("value array with non-number", func(t *testing.T) {
		arr := openArray(t, encoding.AppendValueArray(nil, [][]byte{
			encoding.AppendInt32(nil, 3),
			encoding.AppendString(nil, "x"),
		}))

		_, err := arr.Int32s()
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("string array", func(t *testing.T) {
		arr := openArray(t, encoding.AppendStringArray(nil, []string{"1"}))

		_, err := arr.Float64s()
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("truncated region", func(t *testing.T) {
		buf := encoding.AppendInt64Array(nil, []int64{1, 2})
		arr := openArray(t, buf[:len(buf)-1])

		_, err := arr.Int64s()
		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}

func TestArray_Strings(t *testing.T) {
	vals := []string{"alpha", "", "gamma", "日本"}
	buf := encoding.AppendStringArray(nil, vals)
	arr := openArray(t, buf)

	got, err := arr.Strings()
	require.NoError(t, err)
	require.Equal(t, vals, got)

	// Strings are copies.
	buf[9] = 'X'
	require.Equal(t, "alpha", got[0])

	_, err = openArray(t, encoding.AppendInt32Array(nil, []int32{1})).Strings()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)

	mixed := openArray(t, encoding.AppendValueArray(nil, [][]byte{
		encoding.AppendString(nil, "a"),
		encoding.AppendString(nil, "b"),
	}))
	got, err = mixed.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestArray_ValuesAndRawElements(t *testing.T) {
	bodies := [][]byte{
		encoding.AppendString(nil, "abc"),
		encoding.AppendInt64(nil, 42),
		encoding.AppendNull(nil),
		encoding.AppendBytes(nil, []byte{0xde, 0xad}),
	}
	arr := openArray(t, encoding.AppendValueArray(nil, bodies))

	values, err := arr.Values()
	require.NoError(t, err)
	require.Len(t, values, 4)
	require.True(t, values[0].IsString())
	require.True(t, values[1].IsNumber())
	require.True(t, values[2].IsNull())
	require.True(t, values[3].IsBytes())

	raw, err := arr.RawElements()
	require.NoError(t, err)
	require.Equal(t, bodies, raw)

	_, err = openArray(t, encoding.AppendBoolArray(nil, []bool{true})).RawElements()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestArray_ValuesOfPrimitiveArray(t *testing.T) {
	arr := openArray(t, encoding.AppendInt32Array(nil, []int32{4, 5}))

	values, err := arr.Values()
	require.NoError(t, err)
	require.Len(t, values, 2)

	for i, v := range values {
		require.True(t, v.IsNumber())
		n, err := v.AsInt32()
		require.NoError(t, err)
		require.Equal(t, int32(4+i), n)
	}
}

func BenchmarkArray_Float64s(b *testing.B) {
	vals := make([]float64, 1024)
	for i := range vals {
		vals[i] = float64(i)
	}
	arr := openArray(b, encoding.AppendFloat64Array(nil, vals))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = arr.Float64s()
	}
}

func BenchmarkArray_Strings(b *testing.B) {
	vals := make([]string, 1024)
	for i := range vals {
		vals[i] = "sensor-reading"
	}
	arr := openArray(b, encoding.AppendStringArray(nil, vals))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = arr.Strings()
	}
}
