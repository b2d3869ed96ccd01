// Package endian provides the byte order engines used by bbdata.
//
// The array and value payload is always big-endian; the document frame header is
// little-endian. Code reads and writes through an EndianEngine rather than calling
// encoding/binary directly, so both orders go through one interface:
//
//	engine := endian.PayloadEngine()
//	count := int32(engine.Uint32(buf[pos+1:]))
//	buf = engine.AppendUint32(buf, uint32(count))
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// PayloadEngine returns the engine for array and value payloads (big-endian).
func PayloadEngine() EndianEngine {
	return binary.BigEndian
}

// FrameEngine returns the engine for document frame headers (little-endian).
func FrameEngine() EndianEngine {
	return binary.LittleEndian
}
