package view

import (
	"fmt"
	"math"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// Value reads one encoded value from a shared buffer.
//
// A Value is either tagged (opened with OpenValue, the kind is read from the
// leading tag byte) or typed (produced by a primitive Array, which already knows
// the kind and stores no tag). Accessors read the payload lazily and check
// bounds on every call.
type Value struct {
	buf  []byte
	pos  int // where the value starts: the tag byte, or the payload when typed
	off  int // first payload byte
	kind format.ValueType
	bit  uint8 // bit position for booleans packed in a BOOLEAN array
}

// OpenValue opens the tagged value whose tag byte is at pos.
//
// Returns errs.ErrMalformedHeader if pos is outside the buffer and
// errs.ErrUnknownTag if the tag byte is not a value type.
func OpenValue(buf []byte, pos int) (Value, error) {
	if pos < 0 || pos >= len(buf) {
		return Value{}, fmt.Errorf("%w: value tag at offset %d, buffer has %d bytes",
			errs.ErrMalformedHeader, pos, len(buf))
	}

	kind, err := format.ParseValueType(buf[pos])
	if err != nil {
		return Value{}, err
	}

	return Value{buf: buf, pos: pos, off: pos + 1, kind: kind}, nil
}

// typedValue builds a Value whose payload starts at off with a known kind.
func typedValue(buf []byte, off int, kind format.ValueType, bit uint8) Value {
	return Value{buf: buf, pos: off, off: off, kind: kind, bit: bit}
}

// Kind returns the value's type.
func (v Value) Kind() format.ValueType {
	return v.kind
}

// Offset returns the position of the value in the buffer: its tag byte for
// tagged values, or its payload for elements of primitive arrays.
func (v Value) Offset() int {
	return v.pos
}

func (v Value) IsNull() bool     { return v.kind == format.TypeNull }
func (v Value) IsNumber() bool   { return v.kind.IsNumeric() }
func (v Value) IsBoolean() bool  { return v.kind == format.TypeBoolean }
func (v Value) IsString() bool   { return v.kind == format.TypeString }
func (v Value) IsBytes() bool    { return v.kind == format.TypeBytes }
func (v Value) IsArray() bool    { return v.kind == format.TypeArray }
func (v Value) IsValueMap() bool { return v.kind == format.TypeValueMap }

func (v Value) mismatch(want string) error {
	return fmt.Errorf("%w: cannot read %s value at offset %d as %s", errs.ErrTypeMismatch, v.kind, v.pos, want)
}

// number decodes a numeric payload. want names the caller's coercion for errors.
func (v Value) number(want string) (number, error) {
	switch v.kind { //nolint: exhaustive
	case format.TypeInteger:
		u, err := readUint32(v.buf, v.off)
		return number{i: int64(int32(u))}, err //nolint:gosec
	case format.TypeLong:
		u, err := readUint64(v.buf, v.off)
		return number{i: int64(u)}, err //nolint:gosec
	case format.TypeFloat:
		u, err := readUint32(v.buf, v.off)
		return number{f: float64(math.Float32frombits(u)), isFloat: true}, err
	case format.TypeDouble:
		u, err := readUint64(v.buf, v.off)
		return number{f: math.Float64frombits(u), isFloat: true}, err
	default:
		return number{}, v.mismatch(want)
	}
}

// AsFloat64 reads any numeric value as a float64. An array value is collapsed
// with Array.AsFloat64.
func (v Value) AsFloat64() (float64, error) {
	if v.kind == format.TypeArray {
		arr, err := v.AsArray()
		if err != nil {
			return 0, err
		}

		return arr.AsFloat64()
	}

	n, err := v.number("Double")
	if err != nil {
		return 0, err
	}

	return n.float64(), nil
}

// AsFloat32 reads any numeric value as a float32.
func (v Value) AsFloat32() (float32, error) {
	if v.kind == format.TypeArray {
		arr, err := v.AsArray()
		if err != nil {
			return 0, err
		}

		return arr.AsFloat32()
	}

	n, err := v.number("Float")
	if err != nil {
		return 0, err
	}

	return float32(n.float64()), nil
}

// AsInt32 reads any numeric value as an int32, truncating wider integers and
// converting floats toward zero.
func (v Value) AsInt32() (int32, error) {
	if v.kind == format.TypeArray {
		arr, err := v.AsArray()
		if err != nil {
			return 0, err
		}

		return arr.AsInt32()
	}

	n, err := v.number("Integer")
	if err != nil {
		return 0, err
	}

	return int32(n.int64()), nil //nolint:gosec
}

// AsInt64 reads any numeric value as an int64.
func (v Value) AsInt64() (int64, error) {
	if v.kind == format.TypeArray {
		arr, err := v.AsArray()
		if err != nil {
			return 0, err
		}

		return arr.AsInt64()
	}

	n, err := v.number("Long")
	if err != nil {
		return 0, err
	}

	return n.int64(), nil
}

// AsBool reads a boolean value.
func (v Value) AsBool() (bool, error) {
	switch v.kind { //nolint: exhaustive
	case format.TypeBoolean:
		b, err := sliceAt(v.buf, v.off, 1)
		if err != nil {
			return false, err
		}

		return (b[0]>>v.bit)&1 == 1, nil
	case format.TypeArray:
		arr, err := v.AsArray()
		if err != nil {
			return false, err
		}

		return arr.AsBool()
	default:
		return false, v.mismatch("Boolean")
	}
}

// AsString reads a string value. The result is a copy.
func (v Value) AsString() (string, error) {
	switch v.kind { //nolint: exhaustive
	case format.TypeString:
		b, err := readPrefixed(v.buf, v.off)
		if err != nil {
			return "", err
		}

		return string(b), nil
	case format.TypeArray:
		arr, err := v.AsArray()
		if err != nil {
			return "", err
		}

		return arr.AsString()
	default:
		return "", v.mismatch("String")
	}
}

// AsBytes reads a bytes value without copying. The returned slice aliases the
// shared buffer and must not be modified.
func (v Value) AsBytes() ([]byte, error) {
	switch v.kind { //nolint: exhaustive
	case format.TypeBytes:
		return readPrefixed(v.buf, v.off)
	case format.TypeArray:
		arr, err := v.AsArray()
		if err != nil {
			return nil, err
		}

		return arr.AsBytes()
	default:
		return nil, v.mismatch("Bytes")
	}
}

// AsArray opens the nested array held by an array value.
func (v Value) AsArray() (Array, error) {
	if v.kind != format.TypeArray {
		return Array{}, v.mismatch("Array")
	}

	return OpenArray(v.buf, v.off)
}

// AsValueMap opens the nested map held by a value map value.
func (v Value) AsValueMap() (ValueMap, error) {
	if v.kind != format.TypeValueMap {
		return ValueMap{}, v.mismatch("ValueMap")
	}

	return openValueMap(v.buf, v.off)
}
