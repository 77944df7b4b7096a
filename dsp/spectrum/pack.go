package spectrum

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySpectrum = errors.New("spectrum: empty spectrum")
	ErrOddLength     = errors.New("spectrum: packed spectrum has odd length")
)

// Pack flattens bins into the wire form re0, im0, re1, im1, ...
func Pack(bins []complex128) []float64 {
	out := make([]float64, 2*len(bins))
	PackInto(out, bins)
	return out
}

// PackInto writes the packed form of bins into dst, which must hold at least
// 2*len(bins) values.
func PackInto(dst []float64, bins []complex128) {
	for k, c := range bins {
		dst[2*k] = real(c)
		dst[2*k+1] = imag(c)
	}
}

// Unpack rebuilds complex bins from the packed wire form.
func Unpack(packed []float64) ([]complex128, error) {
	if len(packed)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddLength, len(packed))
	}
	out := make([]complex128, len(packed)/2)
	for k := range out {
		out[k] = complex(packed[2*k], packed[2*k+1])
	}
	return out, nil
}
