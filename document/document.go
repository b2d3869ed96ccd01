package document

import (
	"github.com/arloliu/bbdata/format"
	"github.com/arloliu/bbdata/section"
	"github.com/arloliu/bbdata/view"
)

// Document is a decoded frame: the payload buffer and the header it came with.
//
// The payload is the shared, immutable backing buffer for every view opened
// from the document. It must not be modified while views are in use.
type Document struct {
	payload []byte
	header  section.Header
}

// Root opens the root value at payload offset 0.
func (d Document) Root() (view.Value, error) {
	return view.OpenValue(d.payload, 0)
}

// RootArray opens the root value and returns it as an array.
//
// Returns errs.ErrTypeMismatch if the root is not an array value.
func (d Document) RootArray() (view.Array, error) {
	root, err := d.Root()
	if err != nil {
		return view.Array{}, err
	}

	return root.AsArray()
}

// Payload returns the uncompressed payload.
func (d Document) Payload() []byte {
	return d.payload
}

// Compression returns the codec the frame was stored with.
func (d Document) Compression() format.CompressionType {
	return d.header.Flag.Compression
}

// Header returns the frame header.
func (d Document) Header() section.Header {
	return d.header
}
