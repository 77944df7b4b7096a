package spectrum

import "testing"

func BenchmarkMagnitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"1K", 1024},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(testCase.size-i)/10.0)
			}

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(inData)
			}
		})
	}
}

func BenchmarkGoertzel(b *testing.B) {
	sig := make([]float64, 4096)
	for i := range sig {
		sig[i] = float64(i%17) - 8
	}

	b.SetBytes(int64(len(sig) * 8))
	b.ResetTimer()

	for range b.N {
		_ = Goertzel(sig, 100)
	}
}
