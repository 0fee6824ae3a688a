// Package codec serializes SingleData and MultiData containers into
// self-describing binary blobs and back.
//
// # Layout
//
//	+--------------------+----------------------------------------------+
//	| header (28 bytes)  | payload (optionally compressed)              |
//	+--------------------+----------------------------------------------+
//	                     | row labels | column labels | float64 values  |
//
// The header holds the flag word (magic number, container kind, endianness),
// the payload compression, which axes use a default range and are therefore
// omitted, the row and column counts, the stored and decompressed payload
// sizes and an xxHash64 checksum of the stored payload.
//
// Labels are written as a kind byte followed by a zig-zag varint for integer
// labels or a uvarint length and the bytes for string labels. Values are
// IEEE-754 bits in the header's byte order, row-major for MultiData. Missing
// values round-trip as NaN.
//
// # Usage
//
//	blob, err := codec.EncodeSingle(sd, codec.WithCompression(format.CompressionS2))
//	if err != nil {
//		return err
//	}
//	restored, err := codec.DecodeSingle(blob)
//
// Decoding validates the header, checksum and payload length before building
// a container and reports failures with the codec errors of package errs.
// Decompression never produces more than the size recorded in the header,
// and blobs declaring more than the decode limits are rejected up front:
//
//	restored, err := codec.DecodeSingle(blob, codec.WithMaxPayloadSize(256<<20))
package codec
