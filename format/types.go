package format

import (
	"fmt"

	"github.com/arloliu/bbdata/errs"
)

type (
	// ElementType is the one-byte tag that selects the physical layout of an array payload.
	ElementType uint8
	// ValueType is the one-byte tag leading every self-describing value.
	ValueType uint8
	// CompressionType selects the codec applied to a document frame payload.
	CompressionType uint8
)

const (
	ElementBoolean ElementType = 0x1 // ElementBoolean stores bit-packed booleans, 8 per byte.
	ElementInteger ElementType = 0x2 // ElementInteger stores 4-byte signed integers.
	ElementLong    ElementType = 0x3 // ElementLong stores 8-byte signed integers.
	ElementFloat   ElementType = 0x4 // ElementFloat stores 4-byte IEEE 754 floats.
	ElementDouble  ElementType = 0x5 // ElementDouble stores 8-byte IEEE 754 floats.
	ElementString  ElementType = 0x6 // ElementString stores length-prefixed strings.
	ElementValue   ElementType = 0x7 // ElementValue stores a size table followed by tagged value bodies.
)

const (
	TypeNull     ValueType = 0x0
	TypeBoolean  ValueType = 0x1
	TypeInteger  ValueType = 0x2
	TypeLong     ValueType = 0x3
	TypeFloat    ValueType = 0x4
	TypeArray    ValueType = 0x5
	TypeDouble   ValueType = 0x6
	TypeString   ValueType = 0x7
	TypeBytes    ValueType = 0x8
	TypeValueMap ValueType = 0x9
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ParseElementType converts a tag byte into an ElementType.
//
// Returns errs.ErrUnknownTag if b is not one of the seven element codes.
func ParseElementType(b byte) (ElementType, error) {
	t := ElementType(b)
	switch t {
	case ElementBoolean, ElementInteger, ElementLong, ElementFloat,
		ElementDouble, ElementString, ElementValue:
		return t, nil
	default:
		return 0, fmt.Errorf("%w: element type 0x%02x", errs.ErrUnknownTag, b)
	}
}

// ScalarKind returns the fixed value kind every element of the array shares.
// It returns false for ElementValue, whose elements carry their own tags.
func (e ElementType) ScalarKind() (ValueType, bool) {
	switch e {
	case ElementBoolean:
		return TypeBoolean, true
	case ElementInteger:
		return TypeInteger, true
	case ElementLong:
		return TypeLong, true
	case ElementFloat:
		return TypeFloat, true
	case ElementDouble:
		return TypeDouble, true
	case ElementString:
		return TypeString, true
	default:
		return 0, false
	}
}

// SlotWidth returns the byte width of one element for fixed-width kinds, and 0
// for booleans (bit-packed) and variable-width kinds.
func (e ElementType) SlotWidth() int {
	switch e { //nolint: exhaustive
	case ElementInteger, ElementFloat:
		return 4
	case ElementLong, ElementDouble:
		return 8
	default:
		return 0
	}
}

// IsNumeric reports whether the element kind is one of the four number kinds.
func (e ElementType) IsNumeric() bool {
	return e == ElementInteger || e == ElementLong || e == ElementFloat || e == ElementDouble
}

func (e ElementType) String() string {
	switch e {
	case ElementBoolean:
		return "Boolean"
	case ElementInteger:
		return "Integer"
	case ElementLong:
		return "Long"
	case ElementFloat:
		return "Float"
	case ElementDouble:
		return "Double"
	case ElementString:
		return "String"
	case ElementValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// ParseValueType converts a value tag byte into a ValueType.
//
// Returns errs.ErrUnknownTag if b is not a known value code.
func ParseValueType(b byte) (ValueType, error) {
	t := ValueType(b)
	if t > TypeValueMap {
		return 0, fmt.Errorf("%w: value type 0x%02x", errs.ErrUnknownTag, b)
	}

	return t, nil
}

// IsNumeric reports whether the value kind is one of the four number kinds.
func (v ValueType) IsNumeric() bool {
	return v == TypeInteger || v == TypeLong || v == TypeFloat || v == TypeDouble
}

func (v ValueType) String() string {
	switch v {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeArray:
		return "Array"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeBytes:
		return "Bytes"
	case TypeValueMap:
		return "ValueMap"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
