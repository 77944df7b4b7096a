package rfft

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-rfft/dsp/buffer"
	"github.com/cwbudde/algo-rfft/dsp/spectrum"
)

var (
	ErrInvalidLength  = errors.New("rfft: invalid length")
	ErrLengthMismatch = errors.New("rfft: buffer length mismatch")
	ErrEmptySpectrum  = spectrum.ErrEmptySpectrum
	ErrDirection      = errors.New("rfft: plan direction mismatch")
)

// Direction distinguishes forward and inverse plans.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Strategy names the transform path a plan runs. It is diagnostic only.
type Strategy int

const (
	// StrategyClosedForm evaluates N <= 2 directly.
	StrategyClosedForm Strategy = iota
	// StrategyHalfComplex runs an algo-fft real plan: an N/2-point complex
	// transform over paired samples plus a twiddle recombination.
	StrategyHalfComplex
	// StrategyComplex promotes odd-length input to an N-point algo-fft
	// complex plan.
	StrategyComplex
)

func (s Strategy) String() string {
	switch s {
	case StrategyClosedForm:
		return "closed-form"
	case StrategyHalfComplex:
		return "half-complex"
	case StrategyComplex:
		return "complex"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

type realPlan = algofft.PlanRealT[float64, complex128]

// Plan is a precomputed real transform of fixed length and direction.
//
// For a forward plan Len is the input signal length; for an inverse plan it
// is the reconstructed signal length. A Plan is safe for concurrent use and
// must not be copied after first use.
type Plan struct {
	n        int
	dir      Direction
	strategy Strategy

	// algo-fft real plans own a working buffer, so each call leases its own
	// instance. Complex plans pool their scratch internally and are shared.
	reals sync.Pool
	cplx  *algofft.Plan[complex128]

	scratch buffer.Pool[complex128]
}

func newPlan(n int, dir Direction) (*Plan, error) {
	if err := validateLength(n, dir); err != nil {
		return nil, err
	}

	p := &Plan{n: n, dir: dir}

	switch {
	case n <= 2:
		p.strategy = StrategyClosedForm
	case n%2 == 0:
		p.strategy = StrategyHalfComplex
		first, err := algofft.NewPlanReal64(n)
		if err != nil {
			return nil, fmt.Errorf("%w: real plan for %d: %w", ErrInvalidLength, n, err)
		}
		p.reals.New = func() any {
			rp, err := algofft.NewPlanReal64(n)
			if err != nil {
				return nil
			}
			return rp
		}
		p.reals.Put(first)
	default:
		p.strategy = StrategyComplex
		cp, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("%w: complex plan for %d: %w", ErrInvalidLength, n, err)
		}
		p.cplx = cp
	}

	return p, nil
}

func validateLength(n int, dir Direction) error {
	switch dir {
	case Forward:
		if n < 1 {
			return fmt.Errorf("%w: forward length must be >= 1, got %d", ErrInvalidLength, n)
		}
	case Inverse:
		if n < 2 || n%2 != 0 {
			return fmt.Errorf("%w: inverse length must be even and >= 2, got %d", ErrInvalidLength, n)
		}
	default:
		return fmt.Errorf("rfft: unknown direction %v", dir)
	}
	return nil
}

// Len returns the time-domain length.
func (p *Plan) Len() int { return p.n }

// SpectrumLen returns the number of complex bins, Len()/2+1.
func (p *Plan) SpectrumLen() int { return p.n/2 + 1 }

// Direction returns the plan direction.
func (p *Plan) Direction() Direction { return p.dir }

// Strategy reports the transform path backing this plan.
func (p *Plan) Strategy() Strategy { return p.strategy }

// Forward computes the unscaled half spectrum of src into dst.
//
// len(src) must equal Len() and len(dst) must equal SpectrumLen(). src is
// not modified.
func (p *Plan) Forward(dst []complex128, src []float64) error {
	if p.dir != Forward {
		return fmt.Errorf("%w: Forward called on %s plan", ErrDirection, p.dir)
	}
	if len(src) != p.n || len(dst) != p.SpectrumLen() {
		return fmt.Errorf("%w: src=%d dst=%d want %d/%d", ErrLengthMismatch, len(src), len(dst), p.n, p.SpectrumLen())
	}

	switch p.strategy {
	case StrategyClosedForm:
		if p.n == 1 {
			dst[0] = complex(src[0], 0)
			return nil
		}
		dst[0] = complex(src[0]+src[1], 0)
		dst[1] = complex(src[0]-src[1], 0)
		return nil
	case StrategyComplex:
		return p.forwardComplex(dst, src)
	}

	rp, err := p.leaseReal()
	if err != nil {
		return err
	}
	defer p.reals.Put(rp)

	if err := rp.Forward(dst, src); err != nil {
		return fmt.Errorf("rfft: forward %d: %w", p.n, err)
	}
	return nil
}

func (p *Plan) forwardComplex(dst []complex128, src []float64) error {
	buf := p.scratch.Get(2 * p.n)
	defer p.scratch.Put(buf)

	in, out := buf.Split(p.n)
	for j, v := range src {
		in[j] = complex(v, 0)
	}
	if err := p.cplx.Forward(out, in); err != nil {
		return fmt.Errorf("rfft: forward %d: %w", p.n, err)
	}
	copy(dst, out[:len(dst)])
	return nil
}

// Inverse reconstructs Len() real samples from a half spectrum.
//
// len(src) must equal SpectrumLen() and len(dst) must equal Len(). The
// result is scaled by 1/Len(), so Inverse after Forward returns the original
// signal. The imaginary parts of the DC and Nyquist bins are ignored. src is
// not modified.
func (p *Plan) Inverse(dst []float64, src []complex128) error {
	if p.dir != Inverse {
		return fmt.Errorf("%w: Inverse called on %s plan", ErrDirection, p.dir)
	}
	if len(src) != p.SpectrumLen() || len(dst) != p.n {
		return fmt.Errorf("%w: src=%d dst=%d want %d/%d", ErrLengthMismatch, len(src), len(dst), p.SpectrumLen(), p.n)
	}

	half := p.n / 2
	if p.strategy == StrategyClosedForm {
		dc, ny := real(src[0]), real(src[half])
		dst[0] = (dc + ny) / 2
		dst[1] = (dc - ny) / 2
		return nil
	}

	// algo-fft rejects a non-real DC or Nyquist bin; drop those parts on a
	// copy so src stays untouched.
	buf := p.scratch.Get(len(src))
	defer p.scratch.Put(buf)

	bins := buf.Data()
	copy(bins, src)
	bins[0] = complex(real(bins[0]), 0)
	bins[half] = complex(real(bins[half]), 0)

	rp, err := p.leaseReal()
	if err != nil {
		return err
	}
	defer p.reals.Put(rp)

	if err := rp.Inverse(dst, bins); err != nil {
		return fmt.Errorf("rfft: inverse %d: %w", p.n, err)
	}
	return nil
}

func (p *Plan) leaseReal() (*realPlan, error) {
	rp, _ := p.reals.Get().(*realPlan)
	if rp == nil {
		return nil, fmt.Errorf("%w: real plan for %d could not be rebuilt", ErrInvalidLength, p.n)
	}
	return rp, nil
}
