package compress

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself, without copying.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, without copying, once its length matches
// size.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}
	if len(data) != size {
		return nil, sizeMismatch(len(data), size)
	}

	return data, nil
}
