package rfft

import algofft "github.com/MeKo-Christian/algo-fft"

// ForwardT is Engine.Forward for float32 or float64 samples. The transform
// runs in float64; the packed result is returned in the caller's precision.
func ForwardT[F algofft.Float](e *Engine, signal []F) ([]F, error) {
	packed, err := e.Forward(widen(signal))
	if err != nil {
		return nil, err
	}
	return narrow[F](packed), nil
}

// ForwardMagnitudeT is Engine.ForwardMagnitude for float32 or float64 samples.
func ForwardMagnitudeT[F algofft.Float](e *Engine, signal []F) ([]F, error) {
	mag, err := e.ForwardMagnitude(widen(signal))
	if err != nil {
		return nil, err
	}
	return narrow[F](mag), nil
}

// PeakBinT is Engine.PeakBin for float32 or float64 samples.
func PeakBinT[F algofft.Float](e *Engine, signal []F) (int, error) {
	return e.PeakBin(widen(signal))
}

// InverseT is Engine.Inverse for a float32 or float64 packed spectrum.
func InverseT[F algofft.Float](e *Engine, packed []F) ([]F, error) {
	out, err := e.Inverse(widen(packed))
	if err != nil {
		return nil, err
	}
	return narrow[F](out), nil
}

func widen[F algofft.Float](in []F) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func narrow[F algofft.Float](in []float64) []F {
	out := make([]F, len(in))
	for i, v := range in {
		out[i] = F(v)
	}
	return out
}
