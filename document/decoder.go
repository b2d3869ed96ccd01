package document

import (
	"fmt"

	"github.com/arloliu/bbdata/compress"
	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/internal/hash"
	"github.com/arloliu/bbdata/internal/options"
	"github.com/arloliu/bbdata/section"
)

// Decoder validates a document frame and restores its payload.
//
// The header is parsed by NewDecoder; the payload is only decompressed and
// checked when Decode is called.
//
// Note: A Decoder is NOT thread-safe and is meant for a single Decode call.
type Decoder struct {
	data   []byte
	header section.Header
	config *DecoderConfig
}

// NewDecoder creates a Decoder for the frame at the start of data.
//
// Parameters:
//   - data: Encoded frame (header followed by the stored payload)
//   - opts: Validation options (WithVerifyChecksum, WithMaxPayloadSize)
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: Option validation error or header parsing error
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Decoder{data: data, header: header, config: config}, nil
}

// Header returns the parsed frame header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// FrameSize returns the total size of the frame, header included. Bytes after
// it in data belong to the next frame, if any.
func (d *Decoder) FrameSize() int {
	return section.HeaderSize + int(d.header.StoredSize)
}

// Decode decompresses and verifies the payload.
//
// With CompressionNone the returned Document aliases data and nothing is copied.
//
// Returns:
//   - Document: The decoded document
//   - error: errs.ErrTruncated if data is shorter than the frame,
//     errs.ErrPayloadTooLarge if the declared size exceeds the configured limit
//     or the stored stream decodes past the declared size,
//     errs.ErrChecksumMismatch if verification fails, or a codec error
//
// Built-in codecs never allocate more than the declared size, which is itself
// bounded by WithMaxPayloadSize.
func (d *Decoder) Decode() (Document, error) {
	if int(d.header.UncompressedSize) > d.config.maxPayloadSize {
		return Document{}, fmt.Errorf("%w: %d bytes, limit %d",
			errs.ErrPayloadTooLarge, d.header.UncompressedSize, d.config.maxPayloadSize)
	}

	end := d.FrameSize()
	if len(d.data) < end {
		return Document{}, fmt.Errorf("%w: frame needs %d bytes, got %d", errs.ErrTruncated, end, len(d.data))
	}
	stored := d.data[section.HeaderSize:end:end]

	payload, err := d.decompress(stored)
	if err != nil {
		return Document{}, err
	}
	if len(payload) != int(d.header.UncompressedSize) {
		return Document{}, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrMalformedHeader, len(payload), d.header.UncompressedSize)
	}

	if d.header.Flag.HasChecksum() && d.config.verifyChecksum {
		if !hash.Verify(payload, d.header.Checksum) {
			return Document{}, fmt.Errorf("%w: want 0x%016x, got 0x%016x",
				errs.ErrChecksumMismatch, d.header.Checksum, hash.Checksum(payload))
		}
	}

	return Document{payload: payload, header: d.header}, nil
}

func (d *Decoder) decompress(stored []byte) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload codec: %w", err)
	}

	var payload []byte
	if sized, ok := codec.(compress.SizedDecompressor); ok {
		payload, err = sized.DecompressSized(stored, int(d.header.UncompressedSize))
	} else {
		payload, err = codec.Decompress(stored)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	return payload, nil
}

// Decode is a shorthand for NewDecoder followed by Decoder.Decode.
func Decode(data []byte, opts ...DecoderOption) (Document, error) {
	d, err := NewDecoder(data, opts...)
	if err != nil {
		return Document{}, err
	}

	return d.Decode()
}
