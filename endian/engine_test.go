package endian

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var marker uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&marker))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
	case 0x02:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
	default:
		require.Failf(t, "unexpected first byte", "got %#x", first)
	}

	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
}

func TestCompareNativeEndian(t *testing.T) {
	require.Equal(t, IsNativeLittleEndian(), CompareNativeEndian(GetLittleEndianEngine()))
	require.Equal(t, IsNativeBigEndian(), CompareNativeEndian(GetBigEndianEngine()))
}

func TestEngine(t *testing.T) {
	require.Equal(t, binary.LittleEndian, Engine(false))
	require.Equal(t, binary.BigEndian, Engine(true))

	require.False(t, IsBigEndian(Engine(false)))
	require.True(t, IsBigEndian(Engine(true)))
}

func TestEngine_FloatRoundTrip(t *testing.T) {
	values := []float64{0, -1.5, math.Pi, math.Inf(-1), math.MaxFloat64}

	for _, big := range []bool{false, true} {
		engine := Engine(big)

		var buf []byte
		for _, v := range values {
			buf = engine.AppendUint64(buf, math.Float64bits(v))
		}
		require.Len(t, buf, len(values)*8)

		for i, want := range values {
			got := math.Float64frombits(engine.Uint64(buf[i*8 : i*8+8]))
			require.Equal(t, want, got)
		}
	}

	nan := math.Float64bits(math.NaN())
	le := GetLittleEndianEngine().AppendUint64(nil, nan)
	be := GetBigEndianEngine().AppendUint64(nil, nan)
	require.NotEqual(t, le, be)
	require.True(t, math.IsNaN(math.Float64frombits(GetBigEndianEngine().Uint64(be))))
}

func TestEngine_ByteLayout(t *testing.T) {
	little := make([]byte, 4)
	big := make([]byte, 4)
	GetLittleEndianEngine().PutUint32(little, 0x01020304)
	GetBigEndianEngine().PutUint32(big, 0x01020304)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, little)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, big)
}
