package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rfft/dsp/buffer"
)

// scratchPool holds re/im planes for complex-to-real unpacking.
var scratchPool buffer.Pool[float64]

func getScratch(n int) (re, im []float64, buf *buffer.Buffer[float64]) {
	buf = scratchPool.Get(2 * n)
	re, im = buf.Split(n)
	return re, im, buf
}

func putScratch(buf *buffer.Buffer[float64]) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The norm is evaluated by vecmath using SIMD kernels where available.
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	defer putScratch(buf)

	split(re, im, in)
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudePacked returns |X[k]| for a packed re/im spectrum.
//
// packed must have even length; a trailing odd element is ignored.
func MagnitudePacked(packed []float64) []float64 {
	n := len(packed) / 2
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	re, im, buf := getScratch(n)
	defer putScratch(buf)

	for k := range n {
		re[k] = packed[2*k]
		im[k] = packed[2*k+1]
	}
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	defer putScratch(buf)

	split(re, im, in)
	vecmath.Power(out, re, im)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
