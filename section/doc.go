// Package section defines the binary frame header that wraps a bbdata document.
//
// A frame is a fixed 32-byte little-endian header followed by the stored
// payload. The payload is one tagged value in big-endian bbdata layout,
// optionally compressed.
//
// # Frame Structure
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed, little-endian)      │
//	│  - Magic (2 bytes): 0xBD10                   │
//	│  - Version (1 byte)                          │
//	│  - Compression (1 byte)                      │
//	│  - Flags (4 bytes): bit 0 = checksum present │
//	│  - Checksum (8 bytes): xxHash64              │
//	│  - UncompressedSize (4 bytes)                │
//	│  - StoredSize (4 bytes)                      │
//	│  - Reserved (8 bytes)                        │
//	├──────────────────────────────────────────────┤
//	│ Payload (StoredSize bytes)                   │
//	└──────────────────────────────────────────────┘
//
// The checksum covers the uncompressed payload, so it detects corruption
// introduced anywhere between encoding and decoding regardless of codec.
//
// # Usage
//
// Most callers use the document package, which builds and checks headers.
// Working with a header directly:
//
//	h, err := section.ParseHeader(data)
//	if err != nil {
//	    return err
//	}
//	payload := data[section.HeaderSize : section.HeaderSize+int(h.StoredSize)]
package section
