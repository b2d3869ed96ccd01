//go:build gozstd

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

const zstdLevel = 3

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data of any size.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSized streams the frame into a buffer of size bytes and stops there.
//
// Returns errs.ErrPayloadTooLarge if the stream holds more than size bytes.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out := make([]byte, size)
	n, err := io.ReadFull(zr, out)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return out[:n], nil
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	// The buffer is full; any further byte means the stream is oversized.
	var next [1]byte
	extra, err := io.ReadFull(zr, next[:])
	if extra > 0 {
		return nil, outputTooLarge("zstd", size)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
