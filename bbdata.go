// Package bbdata provides zero-copy access to binary-encoded heterogeneous arrays.
//
// A bbdata payload is a tree of tagged values. Arrays are either homogeneous
// (booleans, 32/64-bit integers and floats, strings) or heterogeneous VALUE
// arrays whose elements carry their own type tag. Readers open a view over the
// shared payload buffer and compute element positions on demand; nothing is
// copied until a value is extracted.
//
// # Core Features
//
//   - O(1) open of any array or value, regardless of size
//   - O(1) random access into fixed-width and boolean arrays
//   - Single-pass bulk accessors and iterators for STRING and VALUE arrays
//   - Scalar coercion of single-element arrays
//   - Framed documents with optional compression (Zstd, S2, LZ4) and an
//     xxHash64 payload checksum
//   - Export to Apache Arrow (see the arrowconv package)
//
// # Basic Usage
//
// Building and framing a document:
//
//	data, err := bbdata.EncodeDocument(func(e *encoding.Encoder) error {
//	    return e.WriteStringArray([]string{"abc", "de"})
//	})
//
// Reading it back:
//
//	doc, err := bbdata.Decode(data)
//	if err != nil {
//	    return err
//	}
//	arr, err := doc.RootArray()
//	for v, err := range arr.All() {
//	    // ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control, use the view, encoding, document and compress packages directly.
package bbdata

import (
	"fmt"

	"github.com/arloliu/bbdata/document"
	"github.com/arloliu/bbdata/encoding"
	"github.com/arloliu/bbdata/internal/hash"
	"github.com/arloliu/bbdata/view"
)

// NewEncoder creates a pooled value encoder. Call Finish when done.
func NewEncoder() *encoding.Encoder {
	return encoding.NewEncoder()
}

// EncodeDocument builds a root value with fn and frames it.
//
// fn must write exactly one value. The frame uses no compression and carries
// a checksum unless opts say otherwise.
//
// Parameters:
//   - fn: Writes the root value
//   - opts: Frame options (document.WithCompression, document.WithChecksum)
//
// Returns:
//   - []byte: The framed document, owned by the caller
//   - error: Error returned by fn, a root count other than one, or a framing error
func EncodeDocument(fn func(e *encoding.Encoder) error, opts ...document.EncoderOption) ([]byte, error) {
	enc := encoding.NewEncoder()
	defer enc.Finish()

	if err := fn(enc); err != nil {
		return nil, err
	}
	if enc.Len() != 1 {
		return nil, fmt.Errorf("document root must be exactly one value, got %d", enc.Len())
	}

	framer, err := document.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return framer.Encode(enc.Bytes())
}

// Decode validates a framed document and returns it.
//
// Equivalent to document.Decode; with no compression the document aliases data.
func Decode(data []byte, opts ...document.DecoderOption) (document.Document, error) {
	return document.Decode(data, opts...)
}

// OpenArray opens the untagged array whose header starts at pos in buf.
func OpenArray(buf []byte, pos int) (view.Array, error) {
	return view.OpenArray(buf, pos)
}

// OpenValue opens the tagged value whose tag byte is at pos in buf.
func OpenValue(buf []byte, pos int) (view.Value, error) {
	return view.OpenValue(buf, pos)
}

// Checksum returns the xxHash64 used for frame payload checksums.
func Checksum(payload []byte) uint64 {
	return hash.Checksum(payload)
}
