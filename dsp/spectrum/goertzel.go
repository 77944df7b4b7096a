package spectrum

import "math"

// Goertzel evaluates DFT bin k of x with the Goertzel recurrence.
//
// The result equals the bin a length-len(x) forward transform would produce
// at index k, including phase:
//
//	X[k] = sum_j x[j] * exp(-2*pi*i*j*k/N)
//
// The cost is O(N) per bin, which beats a full transform when only a few bins
// are of interest. k is reduced modulo N; an empty x yields 0.
func Goertzel(x []float64, k int) complex128 {
	n := len(x)
	if n == 0 {
		return 0
	}
	k %= n
	if k < 0 {
		k += n
	}

	omega := 2 * math.Pi * float64(k) / float64(n)
	sin, cos := math.Sincos(omega)
	coeff := 2 * cos

	var s1, s2 float64
	for _, v := range x {
		s0 := v + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}

	// X[k] = exp(i*omega)*s[N-1] - s[N-2]
	return complex(cos*s1-s2, sin*s1)
}

// GoertzelPower returns |X[k]|^2 without forming the complex bin.
func GoertzelPower(x []float64, k int) float64 {
	c := Goertzel(x, k)
	re, im := real(c), imag(c)
	return re*re + im*im
}
