package section

import (
	"fmt"

	"github.com/arloliu/bbdata/errs"
	"github.com/arloliu/bbdata/format"
)

// Flag holds the identification and option fields of the frame header.
type Flag struct {
	// Magic identifies the frame format, always MagicV1.
	Magic uint16
	// Version is the frame layout version.
	Version uint8
	// Compression is the codec applied to the stored payload.
	Compression format.CompressionType
	// Options is a packed field. Bit 0 marks the checksum as present; the other
	// bits are reserved and must be zero.
	Options uint32
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewFlag creates a Flag for the current version with no compression and no checksum.
func NewFlag() Flag {
	return Flag{
		Magic:       MagicV1,
		Version:     VersionV1,
		Compression: format.CompressionNone,
	}
}

// HasChecksum returns whether the checksum field is populated.
func (f Flag) HasChecksum() bool {
	return f.Options&FlagChecksum != 0
}

// SetChecksum enables or disables the checksum bit.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= FlagChecksum
	} else {
		f.Options &^= FlagChecksum
	}
}

// Validate checks the magic number, version, compression type and reserved bits.
func (f Flag) Validate() error {
	if f.Magic != MagicV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.Magic)
	}
	if f.Version != VersionV1 {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, f.Version)
	}
	if _, ok := validCompressions[f.Compression]; !ok {
		return fmt.Errorf("%w: compression type %d", errs.ErrUnknownTag, f.Compression)
	}
	if f.Options&ReservedFlagMask != 0 {
		return fmt.Errorf("%w: reserved flag bits 0x%08x", errs.ErrMalformedHeader, f.Options)
	}

	return nil
}
