package view

import (
	"fmt"

	"github.com/arloliu/bbdata/endian"
	"github.com/arloliu/bbdata/errs"
)

// engine is the payload byte order. The format is fixed big-endian.
var engine = endian.PayloadEngine()

const (
	// arrayHeaderSize is the element-type tag plus the 4-byte element count.
	arrayHeaderSize = 5
	// lengthPrefixSize is the width of string, bytes and size-table entries.
	lengthPrefixSize = 4
)

// sliceAt returns buf[off:off+n] capped at its end, so callers cannot grow the
// returned slice into the rest of the shared buffer.
func sliceAt(buf []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(buf) || len(buf)-off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, buffer has %d",
			errs.ErrTruncated, n, off, len(buf))
	}

	return buf[off : off+n : off+n], nil
}

func readUint32(buf []byte, off int) (uint32, error) {
	b, err := sliceAt(buf, off, 4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

func readUint64(buf []byte, off int) (uint64, error) {
	b, err := sliceAt(buf, off, 8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(b), nil
}

// readLength reads a 4-byte length prefix or size-table entry.
func readLength(buf []byte, off int) (int, error) {
	u, err := readUint32(buf, off)
	if err != nil {
		return 0, err
	}

	n := int32(u) //nolint:gosec
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d at offset %d", errs.ErrMalformedHeader, n, off)
	}

	return int(n), nil
}

// openBody opens the tagged value stored in the size bytes at off. The value
// sees the buffer cut at the body's end, so reads past the body fail with
// errs.ErrTruncated instead of reaching the next body.
func openBody(buf []byte, off, size int) (Value, error) {
	if size == 0 {
		return Value{}, fmt.Errorf("%w: empty value body at offset %d", errs.ErrMalformedHeader, off)
	}
	if _, err := sliceAt(buf, off, size); err != nil {
		return Value{}, err
	}
	end := off + size

	return OpenValue(buf[:end:end], off)
}

// readPrefixed reads a length prefix at off and returns the bytes it covers.
func readPrefixed(buf []byte, off int) ([]byte, error) {
	n, err := readLength(buf, off)
	if err != nil {
		return nil, err
	}

	return sliceAt(buf, off+lengthPrefixSize, n)
}
