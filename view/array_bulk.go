package view

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// numeric is the set of Go types the bulk number accessors produce.
type numeric interface {
	constraints.Integer | constraints.Float
}

// number holds one decoded numeric element before conversion to the caller's type.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}

	return n.i
}

func (n number) float64() float64 {
	if n.isFloat {
		return n.f
	}

	return float64(n.i)
}

// fixedDecoder returns the slot decoder for a fixed-width element kind.
func fixedDecoder(elem format.ElementType) func([]byte) number {
	switch elem { //nolint: exhaustive
	case format.ElementInteger:
		return func(b []byte) number { return number{i: int64(int32(engine.Uint32(b)))} } //nolint:gosec
	case format.ElementLong:
		return func(b []byte) number { return number{i: int64(engine.Uint64(b))} } //nolint:gosec
	case format.ElementFloat:
		return func(b []byte) number {
			return number{f: float64(math.Float32frombits(engine.Uint32(b))), isFloat: true}
		}
	case format.ElementDouble:
		return func(b []byte) number { return number{f: math.Float64frombits(engine.Uint64(b)), isFloat: true} }
	default:
		return nil
	}
}

// decodeNumbers decodes every element of a numeric or VALUE array in one pass.
func decodeNumbers[T numeric](a Array, want string, conv func(number) T) ([]T, error) {
	if a.elem.IsNumeric() {
		width := a.elem.SlotWidth()
		region, err := sliceAt(a.buf, a.PayloadStart(), a.count*width)
		if err != nil {
			return nil, err
		}

		decode := fixedDecoder(a.elem)
		out := make([]T, a.count)
		for i := range out {
			out[i] = conv(decode(region[i*width:]))
		}

		return out, nil
	}

	if a.elem != format.ElementValue {
		return nil, fmt.Errorf("%w: cannot read %s array as %s list", errs.ErrTypeMismatch, a.elem, want)
	}

	out := make([]T, 0, a.count)
	c := newCursor(a)
	for !c.done() {
		v, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		n, err := v.number(want)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", c.index-1, err)
		}
		out = append(out, conv(n))
	}

	return out, nil
}

// Float64s decodes every element as a float64.
//
// Numeric arrays of any width are converted; VALUE arrays convert each element
// and fail on the first non-numeric one. BOOLEAN and STRING arrays return
// errs.ErrTypeMismatch.
func (a Array) Float64s() ([]float64, error) {
	return decodeNumbers(a, "Double", func(n number) float64 { return n.float64() })
}

// Float32s decodes every element as a float32. See Float64s for conversion rules.
func (a Array) Float32s() ([]float32, error) {
	return decodeNumbers(a, "Float", func(n number) float32 { return float32(n.float64()) })
}

// Int32s decodes every element as an int32. Wider values are truncated and
// floating-point values are converted toward zero.
func (a Array) Int32s() ([]int32, error) {
	return decodeNumbers(a, "Integer", func(n number) int32 { return int32(n.int64()) }) //nolint:gosec
}

// Int64s decodes every element as an int64.
func (a Array) Int64s() ([]int64, error) {
	return decodeNumbers(a, "Long", func(n number) int64 { return n.int64() })
}

// Bools decodes every element as a bool.
//
// BOOLEAN arrays unpack ceil(Len()/8) bytes, least-significant bit first. VALUE
// arrays read each element as a boolean value.
func (a Array) Bools() ([]bool, error) {
	switch a.elem { //nolint: exhaustive
	case format.ElementBoolean:
		region, err := sliceAt(a.buf, a.PayloadStart(), (a.count+7)/8)
		if err != nil {
			return nil, err
		}

		out := make([]bool, a.count)
		for i := range out {
			out[i] = (region[i/8]>>(i%8))&1 == 1
		}

		return out, nil
	case format.ElementValue:
		out := make([]bool, 0, a.count)
		c := newCursor(a)
		for !c.done() {
			v, err := c.nextValue()
			if err != nil {
				return nil, err
			}
			b, err := v.AsBool()
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", c.index-1, err)
			}
			out = append(out, b)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: cannot read %s array as Boolean list", errs.ErrTypeMismatch, a.elem)
	}
}

// Strings decodes every element as a string. The strings are copies and stay
// valid after the buffer is released.
func (a Array) Strings() ([]string, error) {
	if a.elem != format.ElementString && a.elem != format.ElementValue {
		return nil, fmt.Errorf("%w: cannot read %s array as String list", errs.ErrTypeMismatch, a.elem)
	}

	out := make([]string, 0, a.count)
	c := newCursor(a)
	for !c.done() {
		if a.elem == format.ElementString {
			off, err := c.next()
			if err != nil {
				return nil, err
			}
			b, err := readPrefixed(a.buf, off)
			if err != nil {
				return nil, err
			}
			out = append(out, string(b))

			continue
		}

		v, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		s, err := v.AsString()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", c.index-1, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Values returns a reader for every element, in order.
func (a Array) Values() ([]Value, error) {
	out := make([]Value, 0, a.count)
	c := newCursor(a)
	for !c.done() {
		v, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// RawElements returns the encoded body of every element of a VALUE array,
// sliced from the size table without copying. Each body starts with its value tag.
//
// Returns errs.ErrTypeMismatch for primitive arrays.
func (a Array) RawElements() ([][]byte, error) {
	if a.elem != format.ElementValue {
		return nil, fmt.Errorf("%w: raw elements of %s array", errs.ErrTypeMismatch, a.elem)
	}

	out := make([][]byte, 0, a.count)
	c := newCursor(a)
	for !c.done() {
		off, err := c.next()
		if err != nil {
			return nil, err
		}
		body, err := sliceAt(a.buf, off, c.body)
		if err != nil {
			return nil, err
		}
		out = append(out, body)
	}

	return out, nil
}
