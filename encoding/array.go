package encoding

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/bbdata/endian"
	"github.com/arloliu/bbdata/format"
)

// engine is the payload byte order, fixed big-endian.
var engine = endian.PayloadEngine()

// The Append*Array functions write an untagged array region: the element-type
// tag, the 4-byte count and the payload. This is the region view.OpenArray reads.
//
// Lengths and counts must fit in an int32; Encoder validates them before calling
// these functions.

func appendArrayHeader(dst []byte, elem format.ElementType, count int) []byte {
	dst = append(dst, byte(elem))
	return engine.AppendUint32(dst, uint32(count)) //nolint:gosec
}

// appendFixed writes a fixed-width array using put for each slot.
func appendFixed[T constraints.Signed | constraints.Float](
	dst []byte, elem format.ElementType, vals []T, put func([]byte, T) []byte,
) []byte {
	dst = appendArrayHeader(dst, elem, len(vals))
	dst = growSlice(dst, len(vals)*elem.SlotWidth())
	for _, v := range vals {
		dst = put(dst, v)
	}

	return dst
}

// AppendBoolArray appends a BOOLEAN array, packing 8 values per byte with the
// first value in the least-significant bit.
func AppendBoolArray(dst []byte, vals []bool) []byte {
	dst = appendArrayHeader(dst, format.ElementBoolean, len(vals))

	var cur byte
	for i, v := range vals {
		if v {
			cur |= 1 << (i % 8)
		}
		if i%8 == 7 {
			dst = append(dst, cur)
			cur = 0
		}
	}
	if len(vals)%8 != 0 {
		dst = append(dst, cur)
	}

	return dst
}

// AppendInt32Array appends an INTEGER array.
func AppendInt32Array(dst []byte, vals []int32) []byte {
	return appendFixed(dst, format.ElementInteger, vals, func(b []byte, v int32) []byte {
		return engine.AppendUint32(b, uint32(v)) //nolint:gosec
	})
}

// AppendInt64Array appends a LONG array.
func AppendInt64Array(dst []byte, vals []int64) []byte {
	return appendFixed(dst, format.ElementLong, vals, func(b []byte, v int64) []byte {
		return engine.AppendUint64(b, uint64(v)) //nolint:gosec
	})
}

// AppendFloat32Array appends a FLOAT array.
func AppendFloat32Array(dst []byte, vals []float32) []byte {
	return appendFixed(dst, format.ElementFloat, vals, func(b []byte, v float32) []byte {
		return engine.AppendUint32(b, math.Float32bits(v))
	})
}

// AppendFloat64Array appends a DOUBLE array.
func AppendFloat64Array(dst []byte, vals []float64) []byte {
	return appendFixed(dst, format.ElementDouble, vals, func(b []byte, v float64) []byte {
		return engine.AppendUint64(b, math.Float64bits(v))
	})
}

// AppendStringArray appends a STRING array: each element is a 4-byte length
// followed by its bytes, with no padding.
func AppendStringArray(dst []byte, vals []string) []byte {
	size := 0
	for _, s := range vals {
		size += 4 + len(s)
	}

	dst = appendArrayHeader(dst, format.ElementString, len(vals))
	dst = growSlice(dst, size)
	for _, s := range vals {
		dst = engine.AppendUint32(dst, uint32(len(s))) //nolint:gosec
		dst = append(dst, s...)
	}

	return dst
}

// AppendValueArray appends a VALUE array: a size table holding the length of
// every body, then the bodies themselves. Each body must be a complete tagged
// value, such as the output of an Encoder or the Append* value functions.
func AppendValueArray(dst []byte, bodies [][]byte) []byte {
	size := 0
	for _, b := range bodies {
		size += 4 + len(b)
	}

	dst = appendArrayHeader(dst, format.ElementValue, len(bodies))
	dst = growSlice(dst, size)
	for _, b := range bodies {
		dst = engine.AppendUint32(dst, uint32(len(b))) //nolint:gosec
	}
	for _, b := range bodies {
		dst = append(dst, b...)
	}

	return dst
}

func growSlice(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	grown := make([]byte, len(dst), len(dst)+n)
	copy(grown, dst)

	return grown
}
