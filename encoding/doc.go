// Package encoding writes bbdata arrays and values.
//
// It is the inverse of the view package: everything written here can be opened
// with view.OpenArray or view.OpenValue. All multi-byte fields are big-endian.
//
// # Two Layers
//
// The Append* functions are allocation-light building blocks that append to a
// caller-owned slice:
//
//   - AppendInt32Array, AppendStringArray, AppendValueArray, ... write an untagged
//     array region (element-type tag, count, payload)
//   - AppendInt32, AppendString, AppendValueMap, ... write one tagged value
//
// The Encoder wraps them around a pooled buffer, validates lengths against the
// 32-bit wire limit and rejects duplicate map keys.
//
// # Usage
//
//	enc := encoding.NewEncoder()
//	defer enc.Finish()
//
//	a, _ := encoding.Value(func(e *encoding.Encoder) error { return e.WriteString("abc") })
//	b, _ := encoding.Value(func(e *encoding.Encoder) error { e.WriteInt64(42); return nil })
//
//	if err := enc.WriteValueArray([][]byte{a, b}); err != nil {
//	    return err
//	}
//
//	v, _ := view.OpenValue(enc.Bytes(), 0)
//	arr, _ := v.AsArray()
//
// # Thread Safety
//
// The Append* functions are pure. An Encoder is not safe for concurrent use.
package encoding
