// Package time provides time-domain signal statistics used alongside
// spectral analysis, including a zero-crossing frequency estimate that
// cross-checks the spectral peak.
package time

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// RMS returns the root-mean-square level of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// DC returns the arithmetic mean of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Sum(signal) / float64(len(signal))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
}

// ZeroCrossingDistances returns the sample distances between consecutive
// zero crossings. A crossing occurs at index i when signal[i-1] and signal[i]
// fall on different sides of zero; zero itself counts as non-negative.
func ZeroCrossingDistances(signal []float64) []int {
	var out []int
	prev := -1
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] < 0) == (signal[i] < 0) {
			continue
		}
		if prev >= 0 {
			out = append(out, i-prev)
		}
		prev = i
	}
	return out
}

// ZeroCrossingFrequency estimates the fundamental frequency in Hz from the
// median distance between zero crossings, which is half a period for a clean
// tone. It returns 0 when fewer than two crossings exist or sampleRate <= 0.
func ZeroCrossingFrequency(signal []float64, sampleRate float64) float64 {
	if !(sampleRate > 0) {
		return 0
	}
	dist := ZeroCrossingDistances(signal)
	if len(dist) == 0 {
		return 0
	}

	sort.Ints(dist)
	mid := len(dist) / 2
	median := float64(dist[mid])
	if len(dist)%2 == 0 {
		median = float64(dist[mid-1]+dist[mid]) / 2
	}
	return sampleRate / (2 * median)
}
