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
)

// Kind reports which container b holds without decoding the payload.
func Kind(b []byte) (format.Kind, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return 0, err
	}

	return h.Flag.Kind(), nil
}

// DecodeSingle decodes a blob produced by EncodeSingle.
//
// Returns errs.ErrKindMismatch for a MultiData blob, errs.ErrDecodeLimit when
// the blob exceeds the decode limits, and the header, checksum or truncation
// errors of the errs package for corrupted input.
func DecodeSingle(b []byte, opts ...DecodeOption) (*data.SingleData, error) {
	d, err := decode(b, format.KindSingle, opts)
	if err != nil {
		return nil, err
	}

	return data.NewSingle(data.Values(d.values), data.WithLabels(d.rows))
}

// DecodeMulti decodes a blob produced by EncodeMulti.
func DecodeMulti(b []byte, opts ...DecodeOption) (*data.MultiData, error) {
	d, err := decode(b, format.KindMulti, opts)
	if err != nil {
		return nil, err
	}

	nc := d.cols.Len()
	grid := make([][]float64, d.rows.Len())
	for i := range grid {
		grid[i] = d.values[i*nc : (i+1)*nc]
	}

	return data.NewMulti(data.Grid(grid), data.WithLabels(d.rows), data.WithColumnLabels(d.cols))
}

type decoded struct {
	rows   *index.Index
	cols   *index.Index
	values []float64
}

func decode(b []byte, want format.Kind, opts []DecodeOption) (decoded, error) {
	cfg, err := newDecodeConfig(opts)
	if err != nil {
		return decoded{}, err
	}

	h, err := ParseHeader(b)
	if err != nil {
		return decoded{}, err
	}
	if h.Flag.Kind() != want {
		return decoded{}, fmt.Errorf("%w: blob holds %s, want %s", errs.ErrKindMismatch, h.Flag.Kind(), want)
	}

	body := b[HeaderSize:]
	if uint64(len(body)) < uint64(h.PayloadSize) {
		return decoded{}, fmt.Errorf("%w: %d of %d payload bytes", errs.ErrTruncatedPayload, len(body), h.PayloadSize)
	}
	if uint64(len(body)) > uint64(h.PayloadSize) {
		return decoded{}, fmt.Errorf("%w: %d bytes after payload", errs.ErrTrailingData, uint64(len(body))-uint64(h.PayloadSize))
	}
	if err := checkLimits(h, cfg); err != nil {
		return decoded{}, err
	}

	cells := uint64(h.Rows)
	if want == format.KindMulti {
		cells *= uint64(h.Cols)
	}
	if cells*8 > uint64(h.RawSize) {
		return decoded{}, fmt.Errorf("%w: %d bytes for %d values", errs.ErrTruncatedPayload, h.RawSize, cells)
	}

	if hash.Bytes(body) != h.Checksum {
		return decoded{}, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(h.Flag.CompressionType())
	if err != nil {
		return decoded{}, err
	}
	raw, err := codec.Decompress(body, int(h.RawSize))
	if err != nil {
		return decoded{}, fmt.Errorf("decompress payload: %w", err)
	}

	r := &payloadReader{data: raw}
	rows, err := readAxis(r, int(h.Rows), h.Flag.HasDefaultRows())
	if err != nil {
		return decoded{}, fmt.Errorf("row labels: %w", err)
	}

	var cols *index.Index
	if want == format.KindMulti {
		if cols, err = readAxis(r, int(h.Cols), h.Flag.HasDefaultCols()); err != nil {
			return decoded{}, fmt.Errorf("column labels: %w", err)
		}
	}

	values, err := readValues(r, h.Flag.GetEndianEngine(), int(cells))
	if err != nil {
		return decoded{}, err
	}

	return decoded{rows: rows, cols: cols, values: values}, nil
}

// checkLimits rejects blobs whose declared sizes exceed the decode limits.
// Values bound an axis by eight payload bytes per cell, so only default-range
// axes of a container without values need the axis limit.
func checkLimits(h Header, cfg *decodeConfig) error {
	if uint64(h.RawSize) > uint64(cfg.maxPayloadSize) {
		return fmt.Errorf("%w: payload of %d bytes, limit %d", errs.ErrDecodeLimit, h.RawSize, cfg.maxPayloadSize)
	}

	if h.Rows != 0 && (h.Flag.Kind() == format.KindSingle || h.Cols != 0) {
		return nil
	}

	limit := uint64(cfg.maxAxisLength)
	if h.Flag.HasDefaultRows() && uint64(h.Rows) > limit {
		return fmt.Errorf("%w: %d rows without values, limit %d", errs.ErrDecodeLimit, h.Rows, limit)
	}
	if h.Flag.HasDefaultCols() && uint64(h.Cols) > limit {
		return fmt.Errorf("%w: %d columns without values, limit %d", errs.ErrDecodeLimit, h.Cols, limit)
	}

	return nil
}

func readAxis(r *payloadReader, n int, isDefault bool) (*index.Index, error) {
	if isDefault {
		return index.Range(n), nil
	}

	labels, err := r.readLabels(n)
	if err != nil {
		return nil, err
	}

	return index.New(labels)
}

func readValues(r *payloadReader, engine endian.EndianEngine, n int) ([]float64, error) {
	if uint64(r.remaining()) < uint64(n)*8 {
		return nil, fmt.Errorf("%w: %d bytes for %d values", errs.ErrTruncatedPayload, r.remaining(), n)
	}
	if r.remaining() > n*8 {
		return nil, fmt.Errorf("%w: %d bytes after values", errs.ErrTrailingData, r.remaining()-n*8)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(r.data[r.pos : r.pos+8]))
		r.pos += 8
	}

	return values, nil
}
