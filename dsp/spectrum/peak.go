package spectrum

import "gonum.org/v1/gonum/floats"

// PeakBin returns the index of the largest value.
//
// When several entries share the maximum the lowest index wins. NaN entries
// are skipped. An empty slice yields ErrEmptySpectrum.
func PeakBin(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptySpectrum
	}
	return floats.MaxIdx(values), nil
}
