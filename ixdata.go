// Package ixdata provides labeled one- and two-dimensional float64 containers
// with label-aligned arithmetic and a compact binary encoding.
//
// # Core Features
//
//   - Index: an ordered, duplicate-free sequence of int or string labels
//   - SingleData: a 1-D container of values keyed by an Index
//   - MultiData: a 2-D container keyed by a row Index and a column Index
//   - Label (Loc) and positional (ILoc) access, slicing and boolean masks
//   - Arithmetic that aligns operands on the union of their labels
//   - Binary encoding with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	sd, _ := ixdata.NewSingle(data.Values([]float64{1, 2, 3}), data.WithIndex("a", "b", "c"))
//	other, _ := ixdata.NewSingle(data.Values([]float64{10, 20}), data.WithIndex("c", "d"))
//
//	sum := sd.Add(other)         // labels a, b, c, d; NaN where a side is missing
//	filled := sd.AddFill(other, 0)
//
//	v, _ := filled.Loc().At("c") // 13
//
// Encoding and decoding:
//
//	blob, _ := ixdata.Encode(sd, codec.WithCompression(format.CompressionS2))
//	decoded, _ := ixdata.DecodeSingle(blob)
//
// # Package Structure
//
// This package provides top-level wrappers around the data and codec
// packages. Use those packages directly for the full API.
package ixdata

import (
	"fmt"

	"github.com/arloliu/ixdata/codec"
	"github.com/arloliu/ixdata/data"
	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
	"github.com/arloliu/ixdata/index"
)

// NA is the missing-value marker.
var NA = data.NA

// NewIndex creates an Index from int or string values.
//
// Returns errs.ErrDuplicateLabel if a label repeats and errs.ErrInvalidLabel
// for any other value type.
func NewIndex(values ...any) (*index.Index, error) {
	return index.FromValues(values...)
}

// NewSingle creates a SingleData.
//
// Example:
//
//	sd, err := ixdata.NewSingle(data.Scalar(5), data.WithIndex("foo", "bar"))
func NewSingle(in data.Input, opts ...data.Option) (*data.SingleData, error) {
	return data.NewSingle(in, opts...)
}

// NewMulti creates a MultiData.
//
// Example:
//
//	md, err := ixdata.NewMulti(
//	    data.Grid([][]float64{{1, 2}, {3, ixdata.NA}}),
//	    data.WithIndex("foo", "bar"),
//	    data.WithColumns("f", "g"),
//	)
func NewMulti(in data.Input, opts ...data.Option) (*data.MultiData, error) {
	return data.NewMulti(in, opts...)
}

// Encode encodes a *data.SingleData or *data.MultiData.
//
// Parameters:
//   - v: The container to encode
//   - opts: Codec options (byte order, compression)
//
// Returns:
//   - []byte: The encoded blob
//   - error: errs.ErrInvalidInput for a nil or unsupported value, or an encoding error
func Encode(v any, opts ...codec.Option) ([]byte, error) {
	switch c := v.(type) {
	case *data.SingleData:
		return codec.EncodeSingle(c, opts...)
	case *data.MultiData:
		return codec.EncodeMulti(c, opts...)
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", errs.ErrInvalidInput, v)
	}
}

// Decode decodes a blob into the container recorded in its header.
//
// The result is a *data.SingleData or a *data.MultiData. Options set the
// decode limits, see codec.WithMaxPayloadSize and codec.WithMaxAxisLength.
func Decode(b []byte, opts ...codec.DecodeOption) (any, error) {
	kind, err := codec.Kind(b)
	if err != nil {
		return nil, err
	}

	if kind == format.KindMulti {
		md, err := codec.DecodeMulti(b, opts...)
		if err != nil {
			return nil, err
		}

		return md, nil
	}

	sd, err := codec.DecodeSingle(b, opts...)
	if err != nil {
		return nil, err
	}

	return sd, nil
}

// DecodeSingle decodes a blob produced from a SingleData.
func DecodeSingle(b []byte, opts ...codec.DecodeOption) (*data.SingleData, error) {
	return codec.DecodeSingle(b, opts...)
}

// DecodeMulti decodes a blob produced from a MultiData.
func DecodeMulti(b []byte, opts ...codec.DecodeOption) (*data.MultiData, error) {
	return codec.DecodeMulti(b, opts...)
}
