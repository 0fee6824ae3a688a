package compress

import (
	"fmt"
	"math"
	"testing"
)

func benchmarkPayloads() map[string][]byte {
	return map[string][]byte{
		"ramp_8k":    floatPayload(1024, func(i int) float64 { return float64(i) }),
		"sparse_64k": floatPayload(8192, func(i int) float64 {
			if i%4 != 0 {
				return math.NaN()
			}

			return float64(i) * 0.25
		}),
	}
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for payloadName, data := range benchmarkPayloads() {
			b.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for payloadName, data := range benchmarkPayloads() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(compressed, len(data))
				}
			})
		}
	}
}
