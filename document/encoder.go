package document

import (
	"fmt"
	"io"

	"github.com/arloliu/bbdata/compress"
	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/internal/hash"
	"github.com/arloliu/bbdata/internal/options"
	"github.com/arloliu/bbdata/internal/pool"
	"github.com/arloliu/bbdata/section"
	"github.com/arloliu/bbdata/view"
)

// Encoder wraps encoded root values in document frames.
//
// An Encoder holds only its configuration and codec, so one instance can frame
// any number of documents and is safe for concurrent use.
type Encoder struct {
	config *EncoderConfig
	codec  compress.Codec
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Frame options (WithCompression, WithChecksum)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Option validation error or unknown codec
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(config.compression)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload codec: %w", err)
	}

	return &Encoder{config: config, codec: codec}, nil
}

// Encode frames root, which must be one complete tagged value such as the
// output of an encoding.Encoder that wrote a single value.
//
// Returns errs.ErrUnknownTag or errs.ErrMalformedHeader if root does not start
// with a value tag, and errs.ErrPayloadTooLarge if root exceeds the 32-bit size field.
func (e *Encoder) Encode(root []byte) ([]byte, error) {
	header, stored, err := e.frame(root)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = header.AppendTo(out)

	return append(out, stored...), nil
}

// EncodeTo frames root and writes the frame to w through a pooled buffer.
//
// Returns the number of bytes written.
func (e *Encoder) EncodeTo(w io.Writer, root []byte) (int64, error) {
	header, stored, err := e.frame(root)
	if err != nil {
		return 0, err
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(section.HeaderSize + len(stored))
	buf.B = header.AppendTo(buf.B)
	buf.MustWrite(stored)

	return buf.WriteTo(w)
}

func (e *Encoder) frame(root []byte) (*section.Header, []byte, error) {
	if _, err := view.OpenValue(root, 0); err != nil {
		return nil, nil, fmt.Errorf("invalid document root: %w", err)
	}
	if uint64(len(root)) > section.MaxPayloadSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(root))
	}

	stored, err := e.codec.Compress(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if uint64(len(stored)) > section.MaxPayloadSize {
		return nil, nil, fmt.Errorf("%w: %d compressed bytes", errs.ErrPayloadTooLarge, len(stored))
	}

	header := section.NewHeader()
	header.Flag.Compression = e.config.compression
	header.UncompressedSize = uint32(len(root)) //nolint:gosec
	header.StoredSize = uint32(len(stored))     //nolint:gosec
	if e.config.checksum {
		header.Flag.SetChecksum(true)
		header.Checksum = hash.Checksum(root)
	}

	return header, stored, nil
}
