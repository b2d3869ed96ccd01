// Package errs defines the sentinel errors returned by bbdata.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should test for them with errors.Is:
//
//	v, err := arr.Get(10)
//	if errors.Is(err, errs.ErrIndexOutOfRange) {
//	    // handle bad index
//	}
package errs

import "errors"

// Decoding errors for arrays and values.
var (
	// ErrUnknownTag indicates a type tag byte outside the closed set of known codes.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrMalformedHeader indicates the buffer is too short to hold a header at the
	// given position, or the header fields are out of range.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrIndexOutOfRange indicates an element index outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch indicates the requested coercion does not match the actual kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidState indicates a scalar coercion on an array whose size is not exactly 1.
	ErrInvalidState = errors.New("invalid state")

	// ErrTruncated indicates a computed read runs past the end of the buffer.
	ErrTruncated = errors.New("truncated payload")

	// ErrIteratorExhausted indicates Next was called on an iterator with no remaining elements.
	ErrIteratorExhausted = errors.New("iterator exhausted")
)

// Document frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrPayloadTooLarge    = errors.New("payload exceeds size limit")
)

// Encoding errors.
var (
	// ErrDuplicateKey indicates a value map was given the same key twice.
	ErrDuplicateKey = errors.New("duplicate value map key")

	// ErrLengthOverflow indicates a length or count that does not fit the 32-bit wire field.
	ErrLengthOverflow = errors.New("length exceeds 32-bit limit")
)
