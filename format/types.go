// Package format holds the enumerations shared by the binary codec and the
// compression layer.
package format

type (
	// CompressionType selects the compression applied to an encoded payload.
	CompressionType uint8
	// Kind identifies the container stored in an encoded blob.
	Kind uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindSingle Kind = 0x1 // KindSingle is a one-dimensional SingleData.
	KindMulti  Kind = 0x2 // KindMulti is a two-dimensional MultiData.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "Single"
	case KindMulti:
		return "Multi"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is a known container kind.
func (k Kind) Valid() bool {
	return k == KindSingle || k == KindMulti
}
