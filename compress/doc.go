// Package compress provides the payload compression codecs used by the
// binary container codec.
//
// Encoding a container produces a label section and a raw float64 section;
// this package optionally compresses the concatenated payload:
//   - None: the payload is stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Codecs are obtained by compression type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Zstandard implementations
//
// The default build uses the pure Go github.com/klauspost/compress/zstd with
// pooled encoders and decoders. Building with cgo and the gozstd tag
// switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames and can read each other's output.
//
// # Concurrency
//
// All codecs are stateless values and are safe for concurrent use; pooled
// state is taken from and returned to sync.Pools per call.
package compress
