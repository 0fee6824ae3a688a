//go:build cgo && gozstd

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/gozstd"

	"github.com/arloliu/ixdata/errs"
)

const gozstdLevel = 3

// Compress compresses the input data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress streams Zstd frames through libzstd into a buffer of exactly
// size bytes and fails if any output remains.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out := make([]byte, size)
	n, err := io.ReadFull(zr, out)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, sizeMismatch(n, size)
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	var extra [1]byte
	if m, _ := zr.Read(extra[:]); m > 0 {
		return nil, fmt.Errorf("%w: output exceeds %d bytes", errs.ErrDecompressedSize, size)
	}

	return out, nil
}
