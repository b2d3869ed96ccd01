package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/internal/keyset"
	"github.com/arloliu/bbdata/internal/pool"
)

// Encoder appends tagged values to a pooled buffer.
//
// Each Write call appends one complete tagged value, so the buffer holds a
// sequence of values that view.OpenValue can read back one after another. A
// single WriteXxxArray, WriteValueArray or WriteValueMap call produces a
// document root suitable for the document package.
//
// Fixed-size writes cannot fail. Writes carrying a length or count return
// errs.ErrLengthOverflow when it exceeds math.MaxInt32 and leave the buffer
// unchanged.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewEncoder creates an Encoder backed by a buffer from the encode pool.
//
// Call Finish when done to return the buffer to the pool.
func NewEncoder() *Encoder {
	return &Encoder{buf: pool.GetEncodeBuffer()}
}

func (e *Encoder) mustBuffer() {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
}

func (e *Encoder) append(fn func([]byte) []byte) {
	e.mustBuffer()
	e.buf.B = fn(e.buf.B)
	e.count++
}

func checkLength(what string, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %s %d", errs.ErrLengthOverflow, what, n)
	}

	return nil
}

// WriteNull appends a null value.
func (e *Encoder) WriteNull() {
	e.append(AppendNull)
}

// WriteBool appends a boolean value.
func (e *Encoder) WriteBool(v bool) {
	e.append(func(b []byte) []byte { return AppendBool(b, v) })
}

// WriteInt32 appends an integer value.
func (e *Encoder) WriteInt32(v int32) {
	e.append(func(b []byte) []byte { return AppendInt32(b, v) })
}

// WriteInt64 appends a long value.
func (e *Encoder) WriteInt64(v int64) {
	e.append(func(b []byte) []byte { return AppendInt64(b, v) })
}

// WriteFloat32 appends a float value.
func (e *Encoder) WriteFloat32(v float32) {
	e.append(func(b []byte) []byte { return AppendFloat32(b, v) })
}

// WriteFloat64 appends a double value.
func (e *Encoder) WriteFloat64(v float64) {
	e.append(func(b []byte) []byte { return AppendFloat64(b, v) })
}

// WriteString appends a string value.
func (e *Encoder) WriteString(s string) error {
	if err := checkLength("string length", len(s)); err != nil {
		return err
	}
	e.append(func(b []byte) []byte { return AppendString(b, s) })

	return nil
}

// WriteBytes appends a bytes value.
func (e *Encoder) WriteBytes(p []byte) error {
	if err := checkLength("bytes length", len(p)); err != nil {
		return err
	}
	e.append(func(b []byte) []byte { return AppendBytes(b, p) })

	return nil
}

// writeArray appends the array value tag followed by the region fn produces.
func (e *Encoder) writeArray(count int, fn func([]byte) []byte) error {
	if err := checkLength("array count", count); err != nil {
		return err
	}
	e.append(func(b []byte) []byte { return fn(AppendArrayValue(b)) })

	return nil
}

// WriteBoolArray appends an array value with BOOLEAN elements.
func (e *Encoder) WriteBoolArray(vals []bool) error {
	return e.writeArray(len(vals), func(b []byte) []byte { return AppendBoolArray(b, vals) })
}

// WriteInt32Array appends an array value with INTEGER elements.
func (e *Encoder) WriteInt32Array(vals []int32) error {
	return e.writeArray(len(vals), func(b []byte) []byte { return AppendInt32Array(b, vals) })
}

// WriteInt64Array appends an array value with LONG elements.
func (e *Encoder) WriteInt64Array(vals []int64) error {
	return e.writeArray(len(vals), func(b []byte) []byte { return AppendInt64Array(b, vals) })
}

// WriteFloat32Array appends an array value with FLOAT elements.
func (e *Encoder) WriteFloat32Array(vals []float32) error {
	return e.writeArray(len(vals), func(b []byte) []byte { return AppendFloat32Array(b, vals) })
}

// WriteFloat64Array appends an array value with DOUBLE elements.
func (e *Encoder) WriteFloat64Array(vals []float64) error {
	return e.writeArray(len(vals), func(b []byte) []byte { return AppendFloat64Array(b, vals) })
}

// WriteStringArray appends an array value with STRING elements.
func (e *Encoder) WriteStringArray(vals []string) error {
	for i, s := range vals {
		if err := checkLength(fmt.Sprintf("string %d length", i), len(s)); err != nil {
			return err
		}
	}

	return e.writeArray(len(vals), func(b []byte) []byte { return AppendStringArray(b, vals) })
}

// WriteValueArray appends an array value with VALUE elements.
//
// Each body must be one complete tagged value, for example the Bytes of another
// Encoder that wrote exactly one value.
func (e *Encoder) WriteValueArray(bodies [][]byte) error {
	for i, body := range bodies {
		if err := checkLength(fmt.Sprintf("body %d size", i), len(body)); err != nil {
			return err
		}
	}

	return e.writeArray(len(bodies), func(b []byte) []byte { return AppendValueArray(b, bodies) })
}

// WriteValueMap appends a value map. Entries keep the order of keys.
//
// Returns an error if keys and bodies differ in length, errs.ErrDuplicateKey if
// a key repeats, or errs.ErrLengthOverflow if any length exceeds the wire limit.
func (e *Encoder) WriteValueMap(keys []string, bodies [][]byte) error {
	if len(keys) != len(bodies) {
		return fmt.Errorf("value map has %d keys but %d bodies", len(keys), len(bodies))
	}
	if err := checkLength("entry count", len(keys)); err != nil {
		return err
	}

	tracker := keyset.NewTracker(len(keys))
	for i, k := range keys {
		if err := tracker.Track(k); err != nil {
			return err
		}

		if err := checkLength("key length", len(k)); err != nil {
			return err
		}
		if err := checkLength("body size", len(bodies[i])); err != nil {
			return err
		}
	}

	e.append(func(b []byte) []byte { return AppendValueMap(b, keys, bodies) })

	return nil
}

// Bytes returns the encoded values. The slice aliases the pooled buffer and is
// only valid until the next write, Reset or Finish.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *Encoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset clears the encoded data and keeps the buffer for reuse.
func (e *Encoder) Reset() {
	e.mustBuffer()
	e.buf.Reset()
	e.count = 0
}

// Finish returns the buffer to the pool. The Encoder must not be used afterwards.
func (e *Encoder) Finish() {
	if e.buf == nil {
		return
	}
	pool.PutEncodeBuffer(e.buf)
	e.buf = nil
	e.count = 0
}

// Value returns the encoded bytes of a single value built by fn, copied out of
// a pooled Encoder. It is a convenience for producing VALUE array and map bodies.
//
// Example:
//
//	body, err := encoding.Value(func(e *encoding.Encoder) error {
//	    return e.WriteString("abc")
//	})
func Value(fn func(e *Encoder) error) ([]byte, error) {
	e := NewEncoder()
	defer e.Finish()

	if err := fn(e); err != nil {
		return nil, err
	}
	if e.Len() != 1 {
		return nil, fmt.Errorf("value body must hold exactly one value, got %d", e.Len())
	}

	out := make([]byte, e.Size())
	copy(out, e.Bytes())

	return out, nil
}
