package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ixdata/errs"
	"github.com/arloliu/ixdata/format"
)

func TestFlag_Defaults(t *testing.T) {
	f := NewFlag(format.KindMulti)

	require.Equal(t, uint16(MagicV1), f.GetMagicNumber())
	require.Equal(t, format.KindMulti, f.Kind())
	require.False(t, f.IsBigEndian())
	require.Equal(t, format.CompressionNone, f.CompressionType())
	require.False(t, f.HasDefaultRows())
	require.False(t, f.HasDefaultCols())
	require.NoError(t, f.Validate())

	f.SetBigEndian(true)
	require.True(t, f.IsBigEndian())
	require.Equal(t, format.KindMulti, f.Kind(), "endianness must not touch the kind bits")
	f.SetBigEndian(false)
	require.False(t, f.IsBigEndian())
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Flag)
		want   error
	}{
		{"bad magic", func(f *Flag) { f.Options = f.Options&^MagicNumberMask | 0xEA10 }, errs.ErrInvalidMagicNumber},
		{"zero kind", func(f *Flag) { f.Options &^= KindMask }, errs.ErrInvalidHeaderFlags},
		{"unknown kind", func(f *Flag) { f.Options |= KindMask }, errs.ErrInvalidHeaderFlags},
		{"reserved bit", func(f *Flag) { f.Options |= ReservedBitsMask }, errs.ErrInvalidHeaderFlags},
		{"zero compression", func(f *Flag) { f.Compression = 0 }, errs.ErrInvalidHeaderFlags},
		{"unknown compression", func(f *Flag) { f.Compression = 0x9 }, errs.ErrInvalidHeaderFlags},
		{"unknown label bits", func(f *Flag) { f.Labels = 0x04 }, errs.ErrInvalidHeaderFlags},
		{"single with default columns", func(f *Flag) { f.Labels = LabelsDefaultCols }, errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlag(format.KindSingle)
			tt.mutate(&f)
			require.ErrorIs(t, f.Validate(), tt.want)
		})
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		h := Header{
			Flag:        NewFlag(format.KindMulti),
			Rows:        3,
			Cols:        70000,
			PayloadSize: 123456,
			RawSize:     654321,
			Checksum:    0x0102030405060708,
		}
		h.Flag.SetBigEndian(big)
		h.Flag.Compression = uint8(format.CompressionLZ4)
		h.Flag.Labels = LabelsDefaultRows

		b := h.Bytes()
		require.Len(t, b, HeaderSize)

		parsed, err := ParseHeader(b)
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	}
}

func TestHeader_ByteOrder(t *testing.T) {
	h := Header{Flag: NewFlag(format.KindSingle), Rows: 0x01020304, RawSize: 0x0A0B0C0D}

	little := h.Bytes()
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, little[4:8])
	require.Equal(t, []byte{0x0D, 0x0C, 0x0B, 0x0A}, little[16:20])
	require.Equal(t, byte(0xA1), little[0], "options word is always little-endian")
	require.Equal(t, byte(0xD1), little[1])

	h.Flag.SetBigEndian(true)
	big := h.Bytes()
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, big[4:8])
	require.Equal(t, []byte{0x0A, 0x0B, 0x0C, 0x0D}, big[16:20])
	require.Equal(t, byte(0xD1), big[1])
}

func TestParseHeader_Errors(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var h Header
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)

	_, err = ParseHeader(make([]byte, HeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	single := Header{Flag: NewFlag(format.KindSingle), Cols: 2}
	_, err = ParseHeader(single.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)

	uncompressed := Header{Flag: NewFlag(format.KindSingle), PayloadSize: 16, RawSize: 1 << 30}
	_, err = ParseHeader(uncompressed.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags, "an uncompressed payload cannot change size")
}
