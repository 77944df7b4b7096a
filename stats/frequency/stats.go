// Package frequency derives frequency estimates from magnitude spectra.
package frequency

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rfft/dsp/spectrum"
)

var (
	ErrInvalidSampleRate = errors.New("frequency: sample rate must be > 0")
	ErrSizeMismatch      = errors.New("frequency: magnitude length does not match fftSize/2+1")
)

// Peak describes the dominant component of a magnitude spectrum.
type Peak struct {
	Bin       int     // index of the largest bin, lowest index on ties
	Offset    float64 // parabolic refinement in bins, within [-0.5, 0.5]
	Frequency float64 // (Bin+Offset) * sampleRate / fftSize, in Hz
	Magnitude float64 // interpolated peak height
}

// BinFrequency returns the centre frequency in Hz of bin for a transform of
// fftSize samples.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(fftSize)
}

// DominantFrequency locates the largest bin of a one-sided magnitude spectrum
// and refines its position by fitting a parabola through it and its two
// neighbours. The DC and last bins are not refined.
//
// magnitude must hold fftSize/2+1 bins, as produced by a real transform of
// fftSize samples.
func DominantFrequency(magnitude []float64, fftSize int, sampleRate float64) (Peak, error) {
	if err := validate(magnitude, fftSize, sampleRate); err != nil {
		return Peak{}, err
	}

	bin, err := spectrum.PeakBin(magnitude)
	if err != nil {
		return Peak{}, err
	}

	p := Peak{Bin: bin, Magnitude: magnitude[bin]}
	if bin > 0 && bin < len(magnitude)-1 {
		alpha, beta, gamma := magnitude[bin-1], magnitude[bin], magnitude[bin+1]
		if denom := alpha - 2*beta + gamma; denom != 0 {
			p.Offset = 0.5 * (alpha - gamma) / denom
			p.Magnitude = beta - 0.25*(alpha-gamma)*p.Offset
		}
	}
	p.Frequency = (float64(p.Bin) + p.Offset) * sampleRate / float64(fftSize)

	return p, nil
}

// Centroid returns the magnitude-weighted mean frequency in Hz.
//
//	centroid = sum(f_k * |X_k|) / sum(|X_k|)
//
// A silent or empty spectrum yields 0.
func Centroid(magnitude []float64, fftSize int, sampleRate float64) float64 {
	if len(magnitude) == 0 || fftSize <= 0 {
		return 0
	}
	sum := floats.Sum(magnitude)
	if sum == 0 {
		return 0
	}

	weighted := 0.0
	for k, v := range magnitude {
		weighted += BinFrequency(k, fftSize, sampleRate) * v
	}
	return weighted / sum
}

func validate(magnitude []float64, fftSize int, sampleRate float64) error {
	if len(magnitude) == 0 {
		return spectrum.ErrEmptySpectrum
	}
	if !(sampleRate > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if fftSize < 1 || len(magnitude) != fftSize/2+1 {
		return fmt.Errorf("%w: len=%d fftSize=%d", ErrSizeMismatch, len(magnitude), fftSize)
	}
	return nil
}
