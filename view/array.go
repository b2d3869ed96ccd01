package view

import (
	"fmt"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// Array is a read-only view over one encoded array inside a shared buffer.
//
// An Array holds only the buffer reference, the header position, the element
// type and the element count. Every element access is computed from those four
// fields; nothing is cached and the buffer is never written.
type Array struct {
	buf   []byte
	base  int
	elem  format.ElementType
	count int
}

// OpenArray opens the array whose header starts at pos.
//
// It reads exactly the 5 header bytes (element-type tag and big-endian count)
// and does not scan the payload; payload bounds are checked by each accessor.
//
// Parameters:
//   - buf: Backing buffer, which must not be mutated while the view is in use
//   - pos: Offset of the element-type tag
//
// Returns:
//   - Array: The array view
//   - error: errs.ErrMalformedHeader if fewer than 5 bytes remain at pos or the
//     count is negative, errs.ErrUnknownTag if the tag byte is not an element type
func OpenArray(buf []byte, pos int) (Array, error) {
	if pos < 0 || pos > len(buf) || len(buf)-pos < arrayHeaderSize {
		return Array{}, fmt.Errorf("%w: array header needs %d bytes at offset %d, buffer has %d",
			errs.ErrMalformedHeader, arrayHeaderSize, pos, len(buf))
	}

	elem, err := format.ParseElementType(buf[pos])
	if err != nil {
		return Array{}, err
	}

	count := int32(engine.Uint32(buf[pos+1 : pos+arrayHeaderSize])) //nolint:gosec
	if count < 0 {
		return Array{}, fmt.Errorf("%w: negative element count %d at offset %d",
			errs.ErrMalformedHeader, count, pos)
	}

	return Array{buf: buf, base: pos, elem: elem, count: int(count)}, nil
}

// Len returns the number of elements.
func (a Array) Len() int {
	return a.count
}

// ElementType returns the array's element type tag.
func (a Array) ElementType() format.ElementType {
	return a.elem
}

// Offset returns the position of the array header in the buffer.
func (a Array) Offset() int {
	return a.base
}

// PayloadStart returns the offset of the first payload byte, right after the header.
func (a Array) PayloadStart() int {
	return a.base + arrayHeaderSize
}

// ElementOffset returns the byte offset of element index.
//
// Fixed-width and boolean arrays compute the offset directly. STRING arrays walk
// the length prefixes of every preceding element and VALUE arrays sum the
// preceding size-table entries, so both cost O(index). Use Iterator or the bulk
// accessors to visit every element in one pass.
//
// For BOOLEAN arrays the offset is the byte holding the element; BitIndex gives
// the bit within it. For STRING arrays it points at the element's length prefix,
// and for VALUE arrays at the element body's value tag.
//
// Returns errs.ErrIndexOutOfRange if index is outside [0, Len()).
func (a Array) ElementOffset(index int) (int, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}

	start := a.PayloadStart()

	switch a.elem {
	case format.ElementBoolean:
		return start + index/8, nil
	case format.ElementInteger, format.ElementFloat, format.ElementLong, format.ElementDouble:
		return start + index*a.elem.SlotWidth(), nil
	case format.ElementString:
		cursor := start
		for range index {
			n, err := readLength(a.buf, cursor)
			if err != nil {
				return 0, err
			}
			cursor += lengthPrefixSize + n
		}

		return cursor, nil
	case format.ElementValue:
		off, _, err := a.valueSpan(index)
		return off, err
	}

	return 0, fmt.Errorf("%w: element type %s", errs.ErrUnknownTag, a.elem)
}

// valueSpan returns the body offset and size-table size of VALUE element index.
// The caller has checked the index.
func (a Array) valueSpan(index int) (int, int, error) {
	start := a.PayloadStart()
	sum := 0
	for i := range index {
		n, err := readLength(a.buf, start+i*lengthPrefixSize)
		if err != nil {
			return 0, 0, err
		}
		sum += n
	}

	size, err := readLength(a.buf, start+index*lengthPrefixSize)
	if err != nil {
		return 0, 0, err
	}

	return start + a.count*lengthPrefixSize + sum, size, nil
}

// BitIndex returns the bit position of a boolean element within the byte at
// ElementOffset(index). Booleans are packed least-significant bit first.
func (a Array) BitIndex(index int) uint8 {
	return uint8(index % 8) //nolint:gosec
}

// Get returns a reader for element index.
//
// Elements of primitive arrays carry no tag, so the returned Value is stamped
// with the array's scalar kind. Elements of VALUE arrays carry their own tag,
// which the Value reads.
//
// A VALUE element is confined to its size-table entry: a zero size is
// errs.ErrMalformedHeader and reads past the entry fail with errs.ErrTruncated.
//
// Returns errs.ErrIndexOutOfRange if index is outside [0, Len()).
func (a Array) Get(index int) (Value, error) {
	if a.elem == format.ElementValue {
		if err := a.checkIndex(index); err != nil {
			return Value{}, err
		}
		off, size, err := a.valueSpan(index)
		if err != nil {
			return Value{}, err
		}

		return openBody(a.buf, off, size)
	}

	off, err := a.ElementOffset(index)
	if err != nil {
		return Value{}, err
	}

	return a.elementAt(off, index, 0)
}

// elementAt builds the reader for the element at off. size is the body size
// for VALUE arrays and ignored otherwise.
func (a Array) elementAt(off, index, size int) (Value, error) {
	kind, ok := a.elem.ScalarKind()
	if !ok {
		return openBody(a.buf, off, size)
	}

	var bit uint8
	if a.elem == format.ElementBoolean {
		bit = a.BitIndex(index)
	}

	return typedValue(a.buf, off, kind, bit), nil
}

func (a Array) checkIndex(index int) error {
	if index < 0 || index >= a.count {
		return fmt.Errorf("%w: index %d, array length %d", errs.ErrIndexOutOfRange, index, a.count)
	}

	return nil
}
