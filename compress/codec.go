package compress

import (
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
)

// Compressor compresses an encoded container payload.
//
// Payloads are label sections followed by raw float64 values, typically a few
// KiB to a few MiB.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input is not modified. Empty input compresses to nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload, whose length the caller
	// knows to be size.
	//
	// Output is never allowed to grow past size: a payload that decodes to
	// any other length fails with errs.ErrDecompressedSize. Corrupted input
	// or input produced by another algorithm also returns an error.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidInput for an unknown compression type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: compression %s", errs.ErrInvalidInput, compressionType)
	}
}

var builtinCodecs = newBuiltinCodecs()

func newBuiltinCodecs() map[format.CompressionType]Codec {
	codecs := make(map[format.CompressionType]Codec, 4)
	for ct := format.CompressionNone; ct.Valid(); ct++ {
		codec, err := CreateCodec(ct)
		if err != nil {
			panic(err)
		}
		codecs[ct] = codec
	}

	return codecs
}

// GetCodec returns the shared built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: compression %s", errs.ErrInvalidInput, compressionType)
}

// checkEmpty handles empty input for every codec: it decodes to nil only
// when nothing was expected.
func checkEmpty(data []byte, size int) (done bool, err error) {
	if size < 0 {
		return true, fmt.Errorf("%w: negative size %d", errs.ErrDecompressedSize, size)
	}
	if len(data) > 0 {
		return false, nil
	}
	if size != 0 {
		return true, fmt.Errorf("%w: empty input, want %d bytes", errs.ErrDecompressedSize, size)
	}

	return true, nil
}

func sizeMismatch(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrDecompressedSize, got, want)
}
