// Package document frames bbdata payloads for storage and transport.
//
// A frame is a 32-byte header (see the section package) followed by one
// encoded root value, optionally compressed and protected by an xxHash64
// checksum of the uncompressed bytes.
//
// # Encoding
//
//	enc := encoding.NewEncoder()
//	defer enc.Finish()
//	if err := enc.WriteStringArray([]string{"abc", "de"}); err != nil {
//	    return err
//	}
//
//	framer, err := document.NewEncoder(document.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	data, err := framer.Encode(enc.Bytes())
//
// # Decoding
//
//	doc, err := document.Decode(data)
//	if err != nil {
//	    return err
//	}
//	arr, err := doc.RootArray()
//	names, err := arr.Strings()
//
// Decoding an uncompressed frame does not copy the payload: every view opened
// from the Document reads the caller's buffer directly.
package document
