// Package hash wraps xxHash64 for payload checksums and index fingerprints.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/ixdata/label"
)

// Bytes computes the xxHash64 of the given bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Labels computes the xxHash64 fingerprint of an ordered label sequence.
//
// Each label contributes its kind byte followed by its value (8 little-endian
// bytes for integers, a uvarint length and the bytes for strings), so that
// Int(1) and Str("1") hash differently and so do ["ab","c"] and ["a","bc"].
func Labels(labels []label.Label) uint64 {
	d := xxhash.New()
	var scratch [binary.MaxVarintLen64 + 1]byte

	for _, l := range labels {
		scratch[0] = byte(l.Kind())
		if v, ok := l.IntValue(); ok {
			binary.LittleEndian.PutUint64(scratch[1:9], uint64(v)) //nolint:gosec
			_, _ = d.Write(scratch[:9])

			continue
		}

		s, _ := l.StringValue()
		n := binary.PutUvarint(scratch[1:], uint64(len(s)))
		_, _ = d.Write(scratch[:1+n])
		_, _ = d.WriteString(s)
	}

	return d.Sum64()
}
