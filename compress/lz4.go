package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
//
// LZ4 blocks do not record their decoded length, so decompression relies on
// the size stored by the caller.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the payload as one LZ4 block using a pooled
// lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block into a buffer of exactly size bytes.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		// lz4 reports a block decoding past size as a short buffer, the same
		// as a corrupt block.
		return nil, fmt.Errorf("lz4 decompression failed within %d bytes: %w", size, err)
	}
	if n != size {
		return nil, sizeMismatch(n, size)
	}

	return out, nil
}
