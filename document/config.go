package document

import (
	"fmt"

	"github.com/arloliu/bbdata/format"
	"github.com/arloliu/bbdata/internal/options"
	"github.com/arloliu/bbdata/section"
)

// DefaultMaxPayloadSize bounds the uncompressed payload a Decoder accepts.
const DefaultMaxPayloadSize = 64 * 1024 * 1024

// EncoderConfig holds the frame options of an Encoder.
type EncoderConfig struct {
	compression format.CompressionType
	checksum    bool
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression: format.CompressionNone,
		checksum:    true,
	}
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression selects the payload codec. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %v", comp)
		}
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. It is
// enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.checksum = enabled
	})
}

// DecoderConfig holds the validation options of a Decoder.
type DecoderConfig struct {
	verifyChecksum bool
	maxPayloadSize int
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		verifyChecksum: true,
		maxPayloadSize: DefaultMaxPayloadSize,
	}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithVerifyChecksum controls whether Decode checks the payload checksum when
// the frame carries one. It is enabled by default.
func WithVerifyChecksum(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.verifyChecksum = enabled
	})
}

// WithMaxPayloadSize sets the largest uncompressed payload Decode accepts.
// Frames declaring a larger payload fail with errs.ErrPayloadTooLarge before
// anything is decompressed.
func WithMaxPayloadSize(n int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if n <= 0 || uint64(n) > section.MaxPayloadSize {
			return fmt.Errorf("invalid max payload size: %d", n)
		}
		c.maxPayloadSize = n

		return nil
	})
}
