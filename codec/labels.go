package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/internal/pool"
	"github.com/arloliu/ixdata/label"
)

// appendLabels writes every label as its kind byte followed by a zig-zag
// varint (int) or a uvarint length and the bytes (string).
func appendLabels(buf *pool.ByteBuffer, labels []label.Label) {
	var scratch [binary.MaxVarintLen64 + 1]byte

	for _, l := range labels {
		scratch[0] = byte(l.Kind())
		if v, ok := l.IntValue(); ok {
			n := binary.PutVarint(scratch[1:], v)
			_, _ = buf.Write(scratch[:1+n])

			continue
		}

		s, _ := l.StringValue()
		n := binary.PutUvarint(scratch[1:], uint64(len(s)))
		buf.Grow(1 + n + len(s))
		_, _ = buf.Write(scratch[:1+n])
		buf.B = append(buf.B, s...)
	}
}

// payloadReader walks a decompressed payload.
type payloadReader struct {
	data []byte
	pos  int
}

func (r *payloadReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *payloadReader) readLabels(n int) ([]label.Label, error) {
	// every label takes at least two bytes
	if n > r.remaining()/2 {
		return nil, fmt.Errorf("%w: %d labels in %d bytes", errs.ErrTruncatedPayload, n, r.remaining())
	}

	labels := make([]label.Label, n)
	for i := range labels {
		l, err := r.readLabel()
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		labels[i] = l
	}

	return labels, nil
}

func (r *payloadReader) readLabel() (label.Label, error) {
	if r.remaining() < 1 {
		return label.Label{}, errs.ErrTruncatedPayload
	}
	kind := label.Kind(r.data[r.pos])
	r.pos++

	switch kind {
	case label.KindInt:
		v, n := binary.Varint(r.data[r.pos:])
		if n <= 0 {
			return label.Label{}, errs.ErrTruncatedPayload
		}
		r.pos += n

		return label.Int(v), nil

	case label.KindString:
		size, n := binary.Uvarint(r.data[r.pos:])
		if n <= 0 {
			return label.Label{}, errs.ErrTruncatedPayload
		}
		r.pos += n
		if size > uint64(r.remaining()) {
			return label.Label{}, errs.ErrTruncatedPayload
		}
		s := string(r.data[r.pos : r.pos+int(size)])
		r.pos += int(size)

		return label.Str(s), nil

	default:
		return label.Label{}, fmt.Errorf("%w: kind byte %#x", errs.ErrInvalidLabel, byte(kind))
	}
}
