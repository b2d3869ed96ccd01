package compress

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// Compressor compresses a document payload.
//
// Payloads are a single encoded root value, usually a few kilobytes to a few
// megabytes. The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if data is corrupted or was produced by another codec.
// Implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can bound their output.
//
// DecompressSized allocates at most size bytes for the output and fails with
// errs.ErrPayloadTooLarge as soon as the stream would decode past size, so a
// frame that under-declares its payload cannot force a large allocation. The
// document decoder passes the frame's declared size when the codec supports it.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// outputTooLarge reports a stream that decodes past the allowed size.
func outputTooLarge(codec string, size int) error {
	return fmt.Errorf("%w: %s output exceeds %d bytes", errs.ErrPayloadTooLarge, codec, size)
}

// checkSize rejects a negative output bound.
func checkSize(size int) error {
	if size < 0 {
		return fmt.Errorf("invalid output size %d", size)
	}

	return nil
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression run.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 when the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new built-in Codec for the compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var registry = newRegistry()

func newRegistry() *xsync.Map[format.CompressionType, Codec] {
	m := xsync.NewMap[format.CompressionType, Codec]()
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, _ := CreateCodec(ct, "builtin")
		m.Store(ct, codec)
	}

	return m
}

// GetCodec returns the registered Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := registry.Load(compressionType); ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// RegisterCodec replaces the Codec used for a compression type, for example to
// tune the zstd level. It is safe to call concurrently with GetCodec.
//
// Only the built-in compression types can be registered, since the frame
// header cannot name any other.
func RegisterCodec(compressionType format.CompressionType, codec Codec) error {
	if codec == nil {
		return fmt.Errorf("nil codec for compression type %s", compressionType)
	}
	if _, ok := registry.Load(compressionType); !ok {
		return fmt.Errorf("unsupported compression type: %s", compressionType)
	}
	registry.Store(compressionType, codec)

	return nil
}
