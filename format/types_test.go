package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ct.String())
		})
	}
}

func TestCompressionType_Valid(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.True(t, ct.Valid(), ct.String())
	}
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
}

func TestKind(t *testing.T) {
	require.Equal(t, "Single", KindSingle.String())
	require.Equal(t, "Multi", KindMulti.String())
	require.Equal(t, "Unknown", Kind(3).String())

	require.True(t, KindSingle.Valid())
	require.True(t, KindMulti.Valid())
	require.False(t, Kind(0).Valid())
}
