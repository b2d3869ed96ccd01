// Package view provides zero-copy readers over bbdata arrays and values.
//
// A view never copies or modifies the backing buffer. It records where a
// structure starts and computes every element position on demand, so opening an
// Array or a Value is O(1) regardless of payload size.
//
// # Array Layout
//
//	[1 byte: element type][4 bytes: element count N, big-endian]
//	BOOLEAN:       ceil(N/8) bytes, element j is bit j%8 of byte j/8
//	INTEGER/FLOAT: N * 4 bytes
//	LONG/DOUBLE:   N * 8 bytes
//	STRING:        N * ([4-byte length][bytes])
//	VALUE:         N * 4-byte size table, then N tagged value bodies
//
// # Access Cost
//
// Fixed-width and boolean arrays support O(1) random access. STRING and VALUE
// arrays have no offset index, so Array.Get and Array.ElementOffset walk every
// preceding element (O(index)); visiting all elements that way is O(N²). The
// bulk accessors (Float64s, Strings, Values, ...) and Array.Iterator carry a
// running cursor instead and cost O(N) for a full pass.
//
// # Basic Usage
//
//	arr, err := view.OpenArray(buf, pos)
//	if err != nil {
//	    return err
//	}
//
//	names, err := arr.Strings()
//
//	it := arr.Iterator()
//	for it.HasNext() {
//	    v, err := it.Next()
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v.Kind())
//	}
//
// # Scalar Coercion
//
// An array holding exactly one element can be read as that element through the
// As* methods on Array (AsInt32, AsString, ...). Arrays of any other size fail
// with errs.ErrInvalidState; arrays whose element kind cannot match fail with
// errs.ErrTypeMismatch.
//
// # Thread Safety
//
// Array, Value and ValueMap are immutable values and safe for concurrent use as
// long as nobody writes to the backing buffer. An Iterator belongs to a single
// goroutine.
package view
