package encoding

import (
	"math"

	"github.com/arloliu/bbdata/format"
)

// The Append* value functions write one tagged value: the value-type tag
// followed by its payload. Tagged values are what view.OpenValue reads, and
// they are the element bodies of VALUE arrays and value maps.

// AppendNull appends a null value.
func AppendNull(dst []byte) []byte {
	return append(dst, byte(format.TypeNull))
}

// AppendBool appends a boolean value.
func AppendBool(dst []byte, v bool) []byte {
	var b byte
	if v {
		b = 1
	}

	return append(dst, byte(format.TypeBoolean), b)
}

// AppendInt32 appends an integer value.
func AppendInt32(dst []byte, v int32) []byte {
	dst = append(dst, byte(format.TypeInteger))
	return engine.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// AppendInt64 appends a long value.
func AppendInt64(dst []byte, v int64) []byte {
	dst = append(dst, byte(format.TypeLong))
	return engine.AppendUint64(dst, uint64(v)) //nolint:gosec
}

// AppendFloat32 appends a float value.
func AppendFloat32(dst []byte, v float32) []byte {
	dst = append(dst, byte(format.TypeFloat))
	return engine.AppendUint32(dst, math.Float32bits(v))
}

// AppendFloat64 appends a double value.
func AppendFloat64(dst []byte, v float64) []byte {
	dst = append(dst, byte(format.TypeDouble))
	return engine.AppendUint64(dst, math.Float64bits(v))
}

// AppendString appends a string value. len(s) must fit in an int32.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, byte(format.TypeString))
	dst = engine.AppendUint32(dst, uint32(len(s))) //nolint:gosec

	return append(dst, s...)
}

// AppendBytes appends a bytes value. len(b) must fit in an int32.
func AppendBytes(dst []byte, b []byte) []byte {
	dst = append(dst, byte(format.TypeBytes))
	dst = engine.AppendUint32(dst, uint32(len(b))) //nolint:gosec

	return append(dst, b...)
}

// AppendArrayValue appends the array value tag; the caller follows it with one
// of the Append*Array functions.
func AppendArrayValue(dst []byte) []byte {
	return append(dst, byte(format.TypeArray))
}

// AppendValueMap appends a value map. keys and bodies must have equal length,
// keys must be unique and each body must be a complete tagged value.
func AppendValueMap(dst []byte, keys []string, bodies [][]byte) []byte {
	dst = append(dst, byte(format.TypeValueMap))
	dst = engine.AppendUint32(dst, uint32(len(keys))) //nolint:gosec
	for i, k := range keys {
		dst = engine.AppendUint32(dst, uint32(len(k))) //nolint:gosec
		dst = append(dst, k...)
		dst = engine.AppendUint32(dst, uint32(len(bodies[i]))) //nolint:gosec
		dst = append(dst, bodies[i]...)
	}

	return dst
}
