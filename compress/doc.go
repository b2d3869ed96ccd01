// Package compress provides the payload codecs for bbdata document frames.
//
// A document frame stores one encoded root value, optionally compressed as a
// whole. The frame header records which codec was used:
//
//   - None (format.CompressionNone): payload stored as is; decoding is zero-copy
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): Snappy-compatible, balanced
//   - LZ4 (format.CompressionLZ4): fastest, lowest ratio
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs that also implement SizedDecompressor receive the uncompressed size
// from the frame header, allocate their output once and never decode past it.
// The zstd, S2 and LZ4 codecs implement it.
//
// # Registry
//
// GetCodec returns the codec registered for a compression type. The registry
// is a concurrent map pre-filled with the built-in codecs; RegisterCodec swaps
// in a replacement, for example a zstd codec with a different level:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Zstd Backends
//
// The default zstd backend is github.com/klauspost/compress/zstd (pure Go,
// pooled encoders and decoders). Building with -tags gozstd switches to
// github.com/valyala/gozstd, a cgo binding to the reference C library. Both
// produce standard zstd frames and can read each other's output.
//
// # Thread Safety
//
// All built-in codecs are stateless values and safe for concurrent use; any
// internal encoder state is taken from a sync.Pool per call.
package compress
