package section

import "math"

const (
	// MagicV1 identifies a bbdata document frame.
	MagicV1 = 0xBD10
	// VersionV1 is the only frame version this package writes and reads.
	VersionV1 = 1

	// Flag bits
	FlagChecksum     = 0x0001     // bit 0: the checksum field is populated
	ReservedFlagMask = 0xFFFFFFFE // bits 1-31 must be zero
)

// offsets and sizes in the frame header
const (
	HeaderSize             = 32 // fixed frame header size in bytes
	MagicOffset            = 0
	VersionOffset          = 2
	CompressionOffset      = 3
	FlagsOffset            = 4
	ChecksumOffset         = 8
	UncompressedSizeOffset = 16
	StoredSizeOffset       = 20
	ReservedOffset         = 24

	MaxPayloadSize = math.MaxUint32 // payload sizes are stored as uint32
)
