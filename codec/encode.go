package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/ixdata/compress"
	"github.com/arloliu/ixdata/data"
	"github.com/arloliu/ixdata/endian"
	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
	"github.com/arloliu/ixdata/index"
	"github.com/arloliu/ixdata/internal/hash"
	"github.com/arloliu/ixdata/internal/pool"
)

// EncodeSingle serializes sd into a self-describing blob.
//
// Parameters:
//   - sd: Container to encode
//   - opts: Byte order and compression options
//
// Returns:
//   - []byte: Header followed by the payload, owned by the caller
//   - error: errs.ErrInvalidInput for a nil container or invalid options
func EncodeSingle(sd *data.SingleData, opts ...Option) ([]byte, error) {
	if sd == nil {
		return nil, fmt.Errorf("%w: nil SingleData", errs.ErrInvalidInput)
	}

	return encode(format.KindSingle, sd.Index(), nil, sd.Values(), opts)
}

// EncodeMulti serializes md into a self-describing blob. Values are stored
// row-major.
func EncodeMulti(md *data.MultiData, opts ...Option) ([]byte, error) {
	if md == nil {
		return nil, fmt.Errorf("%w: nil MultiData", errs.ErrInvalidInput)
	}

	nr, nc := md.Shape()
	values := make([]float64, 0, nr*nc)
	for _, row := range md.Values() {
		values = append(values, row...)
	}

	return encode(format.KindMulti, md.Index(), md.Columns(), values, opts)
}

func encode(kind format.Kind, rows, cols *index.Index, values []float64, opts []Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if uint64(rows.Len()) > math.MaxUint32 || uint64(cols.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: axis longer than %d", errs.ErrInvalidInput, uint32(math.MaxUint32))
	}

	h := Header{Flag: NewFlag(kind)}
	h.Flag.SetBigEndian(cfg.bigEndian)
	h.Rows = uint32(rows.Len()) //nolint:gosec
	h.Cols = uint32(cols.Len()) //nolint:gosec

	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if rows.IsDefault() {
		h.Flag.Labels |= LabelsDefaultRows
	} else {
		appendLabels(buf, rows.Labels())
	}
	if kind == format.KindMulti {
		if cols.IsDefault() {
			h.Flag.Labels |= LabelsDefaultCols
		} else {
			appendLabels(buf, cols.Labels())
		}
	}
	appendValues(buf, h.Flag.GetEndianEngine(), values)

	raw := buf.Bytes()
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrInvalidInput, len(raw))
	}
	payload, comp, err := compressPayload(raw, cfg.compression)
	if err != nil {
		return nil, err
	}

	h.Flag.Compression = uint8(comp)
	h.PayloadSize = uint32(len(payload)) //nolint:gosec
	h.RawSize = uint32(len(raw))         //nolint:gosec
	h.Checksum = hash.Bytes(payload)

	out := make([]byte, HeaderSize+len(payload))
	h.put(out[:HeaderSize])
	copy(out[HeaderSize:], payload)

	return out, nil
}

func appendValues(buf *pool.ByteBuffer, engine endian.EndianEngine, values []float64) {
	buf.Grow(len(values) * 8)
	for _, v := range values {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(v))
	}
}

// compressPayload compresses raw, falling back to storing it as is when
// compression does not make it smaller.
func compressPayload(raw []byte, comp format.CompressionType) ([]byte, format.CompressionType, error) {
	if comp == format.CompressionNone || len(raw) == 0 {
		return raw, format.CompressionNone, nil
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, 0, err
	}
	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, 0, fmt.Errorf("compress payload with %s: %w", comp, err)
	}
	if len(compressed) == 0 || len(compressed) >= len(raw) {
		return raw, format.CompressionNone, nil
	}

	return compressed, comp, nil
}
