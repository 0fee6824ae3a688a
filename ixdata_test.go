package ixdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ixdata/codec"
	"github.com/arloliu/ixdata/data"
	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
)

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex("a", "b", 3)
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	_, err = NewIndex("a", "a")
	require.ErrorIs(t, err, errs.ErrDuplicateLabel)

	_, err = NewIndex(1.5)
	require.ErrorIs(t, err, errs.ErrInvalidLabel)
}

func TestEncodeDecode_Single(t *testing.T) {
	sd, err := NewSingle(data.Values([]float64{1, NA, 3}), data.WithIndex("a", "b", "c"))
	require.NoError(t, err)

	blob, err := Encode(sd, codec.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	got, err := DecodeSingle(blob)
	require.NoError(t, err)
	require.True(t, got.Equal(sd))

	anyGot, err := Decode(blob)
	require.NoError(t, err)
	require.IsType(t, &data.SingleData{}, anyGot)
}

func TestEncodeDecode_Multi(t *testing.T) {
	md, err := NewMulti(
		data.Grid([][]float64{{1, 2}, {3, NA}}),
		data.WithIndex("foo", "bar"),
		data.WithColumns("f", "g"),
	)
	require.NoError(t, err)

	blob, err := Encode(md, codec.WithBigEndian())
	require.NoError(t, err)

	got, err := DecodeMulti(blob)
	require.NoError(t, err)
	require.True(t, got.Equal(md))

	anyGot, err := Decode(blob)
	require.NoError(t, err)
	decoded, ok := anyGot.(*data.MultiData)
	require.True(t, ok)

	v, err := decoded.Loc().At("bar", "g")
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode("not a container")
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Encode(nil)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	var sd *data.SingleData
	_, err = Encode(sd)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDecode_Errors(t *testing.T) {
	got, err := Decode([]byte{0x01})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	require.Nil(t, got)

	sd, err := NewSingle(data.Values(make([]float64, 64)))
	require.NoError(t, err)
	blob, err := Encode(sd)
	require.NoError(t, err)

	got, err = Decode(blob, codec.WithMaxPayloadSize(64))
	require.ErrorIs(t, err, errs.ErrDecodeLimit)
	require.Nil(t, got)
}
