package section

import (
	"fmt"

	"github.com/arloliu/bbdata/endian"
	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// Header is the fixed-size header at the start of every document frame.
//
// Unlike the payload, the header is little-endian.
type Header struct {
	// Checksum is the xxHash64 of the uncompressed payload, zero when the
	// checksum flag is not set.
	Checksum uint64 // byte offset 8-15
	// UncompressedSize is the payload size after decompression.
	UncompressedSize uint32 // byte offset 16-19
	// StoredSize is the number of payload bytes following the header.
	StoredSize uint32 // byte offset 20-23

	// Flag holds magic, version, compression and options.
	Flag Flag // byte offset 0-7
}

// NewHeader creates a Header with default flags. Sizes and checksum are set by
// the document encoder.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine := endian.FrameEngine()

	h.Flag.Magic = engine.Uint16(data[MagicOffset:])
	h.Flag.Version = data[VersionOffset]
	h.Flag.Compression = format.CompressionType(data[CompressionOffset])
	h.Flag.Options = engine.Uint32(data[FlagsOffset:])
	h.Checksum = engine.Uint64(data[ChecksumOffset:])
	h.UncompressedSize = engine.Uint32(data[UncompressedSizeOffset:])
	h.StoredSize = engine.Uint32(data[StoredSizeOffset:])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a new 32-byte slice. Reserved bytes are zero.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.FrameEngine()

	dst = engine.AppendUint16(dst, h.Flag.Magic)
	dst = append(dst, h.Flag.Version, byte(h.Flag.Compression))
	dst = engine.AppendUint32(dst, h.Flag.Options)
	dst = engine.AppendUint64(dst, h.Checksum)
	dst = engine.AppendUint32(dst, h.UncompressedSize)
	dst = engine.AppendUint32(dst, h.StoredSize)

	return append(dst, make([]byte, HeaderSize-ReservedOffset)...)
}

// ParseHeader parses a Header from the start of data.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d",
			errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
