package rfft

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rfft/dsp/spectrum"
)

// Engine executes real transforms against a plan cache.
//
// An Engine is safe for concurrent use; plans are shared and each call owns
// its scratch memory.
type Engine struct {
	planner *Planner
	norm    Normalization
}

// New creates an Engine. Without options it owns a private Planner and uses
// NormBackward.
func New(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)
	return &Engine{
		planner: cfg.Planner,
		norm:    cfg.Normalization,
	}
}

// Planner returns the plan cache used by this engine.
func (e *Engine) Planner() *Planner { return e.planner }

// Normalization returns the scaling convention.
func (e *Engine) Normalization() Normalization { return e.norm }

// ForwardComplex returns the N/2+1 bin half spectrum of signal.
func (e *Engine) ForwardComplex(signal []float64) ([]complex128, error) {
	bins, err := e.forward(signal)
	if err != nil {
		return nil, err
	}
	if s := e.norm.forwardScale(len(signal)); s != 1 {
		c := complex(s, 0)
		for k := range bins {
			bins[k] *= c
		}
	}
	return bins, nil
}

// Forward returns the half spectrum of signal in packed form
// (re0, im0, re1, im1, ...), of length 2*(N/2+1).
func (e *Engine) Forward(signal []float64) ([]float64, error) {
	bins, err := e.forward(signal)
	if err != nil {
		return nil, err
	}
	packed := spectrum.Pack(bins)
	e.scale(packed, e.norm.forwardScale(len(signal)))
	return packed, nil
}

// ForwardMagnitude returns |X[k]| for the N/2+1 bins of signal.
func (e *Engine) ForwardMagnitude(signal []float64) ([]float64, error) {
	bins, err := e.forward(signal)
	if err != nil {
		return nil, err
	}
	mag := spectrum.Magnitude(bins)
	e.scale(mag, e.norm.forwardScale(len(signal)))
	return mag, nil
}

// PeakBin returns the index of the largest magnitude bin of signal. The
// lowest index wins ties. An empty signal yields ErrEmptySpectrum.
func (e *Engine) PeakBin(signal []float64) (int, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("%w: peak search on empty signal", ErrEmptySpectrum)
	}
	mag, err := e.ForwardMagnitude(signal)
	if err != nil {
		return 0, err
	}
	return spectrum.PeakBin(mag)
}

// Inverse reconstructs a real signal from a packed half spectrum.
//
// packed must have even length 2*E with E >= 2 entries; the result has
// 2*(E-1) samples. Odd-length originals cannot be represented.
func (e *Engine) Inverse(packed []float64) ([]float64, error) {
	if len(packed)%2 != 0 {
		return nil, fmt.Errorf("%w: packed spectrum length %d is odd", ErrInvalidLength, len(packed))
	}
	if len(packed)/2 < 2 {
		return nil, fmt.Errorf("%w: packed spectrum needs at least 2 entries, got %d", ErrInvalidLength, len(packed)/2)
	}

	bins, err := spectrum.Unpack(packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return e.InverseComplex(bins)
}

// InverseComplex reconstructs 2*(len(bins)-1) real samples from a half
// spectrum.
func (e *Engine) InverseComplex(bins []complex128) ([]float64, error) {
	if len(bins) < 2 {
		return nil, fmt.Errorf("%w: half spectrum needs at least 2 entries, got %d", ErrInvalidLength, len(bins))
	}

	n := 2 * (len(bins) - 1)
	plan, err := e.planner.PlanInverse(n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if err := plan.Inverse(out, bins); err != nil {
		return nil, err
	}
	e.scale(out, e.norm.inverseScale(n))
	return out, nil
}

// forward runs the unscaled transform.
func (e *Engine) forward(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidLength)
	}

	plan, err := e.planner.PlanForward(len(signal))
	if err != nil {
		return nil, err
	}

	bins := make([]complex128, plan.SpectrumLen())
	if err := plan.Forward(bins, signal); err != nil {
		return nil, err
	}
	return bins, nil
}

func (e *Engine) scale(x []float64, s float64) {
	if s == 1 {
		return
	}
	vecmath.ScaleBlock(x, x, s)
}
