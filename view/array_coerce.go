package view

import (
	"fmt"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// IsNumberArray reports whether the element type is INTEGER, LONG, FLOAT or DOUBLE.
func (a Array) IsNumberArray() bool {
	return a.elem.IsNumeric()
}

// IsBooleanArray reports whether the element type is BOOLEAN.
func (a Array) IsBooleanArray() bool {
	return a.elem == format.ElementBoolean
}

// IsStringArray reports whether the element type is STRING.
func (a Array) IsStringArray() bool {
	return a.elem == format.ElementString
}

// single returns the only element of an array being collapsed to a scalar.
//
// Arrays whose kind matches the coercion, and VALUE arrays, must hold exactly one
// element (errs.ErrInvalidState otherwise). Primitive arrays of another kind can
// never match and fail with errs.ErrTypeMismatch.
func (a Array) single(want string, matches bool) (Value, error) {
	if !matches && a.elem != format.ElementValue {
		return Value{}, fmt.Errorf("%w: cannot read %s array as %s", errs.ErrTypeMismatch, a.elem, want)
	}
	if a.count != 1 {
		return Value{}, fmt.Errorf("%w: %s array of size %d cannot be read as a single %s",
			errs.ErrInvalidState, a.elem, a.count, want)
	}

	return a.Get(0)
}

// AsFloat64 reads a single-element array as a float64.
func (a Array) AsFloat64() (float64, error) {
	v, err := a.single("Double", a.IsNumberArray())
	if err != nil {
		return 0, err
	}

	return v.AsFloat64()
}

// AsFloat32 reads a single-element array as a float32.
func (a Array) AsFloat32() (float32, error) {
	v, err := a.single("Float", a.IsNumberArray())
	if err != nil {
		return 0, err
	}

	return v.AsFloat32()
}

// AsInt32 reads a single-element array as an int32.
//
// A 1-element INTEGER array returns its element; a 2-element one fails with
// errs.ErrInvalidState; a 1-element STRING array fails with errs.ErrTypeMismatch.
func (a Array) AsInt32() (int32, error) {
	v, err := a.single("Integer", a.IsNumberArray())
	if err != nil {
		return 0, err
	}

	return v.AsInt32()
}

// AsInt64 reads a single-element array as an int64.
func (a Array) AsInt64() (int64, error) {
	v, err := a.single("Long", a.IsNumberArray())
	if err != nil {
		return 0, err
	}

	return v.AsInt64()
}

// AsBool reads a single-element array as a bool.
func (a Array) AsBool() (bool, error) {
	v, err := a.single("Boolean", a.IsBooleanArray())
	if err != nil {
		return false, err
	}

	return v.AsBool()
}

// AsString reads a single-element array as a string.
func (a Array) AsString() (string, error) {
	v, err := a.single("String", a.IsStringArray())
	if err != nil {
		return "", err
	}

	return v.AsString()
}

// AsBytes reads a single-element VALUE array holding a bytes value. Primitive
// arrays never hold bytes and fail with errs.ErrTypeMismatch.
func (a Array) AsBytes() ([]byte, error) {
	v, err := a.single("Bytes", false)
	if err != nil {
		return nil, err
	}

	return v.AsBytes()
}
