// Package signal generates deterministic test signals for spectral analysis.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// ErrInvalidParameter reports a rejected generator argument.
var ErrInvalidParameter = errors.New("signal: invalid parameter")

// Kind names a generated waveform.
type Kind int

const (
	KindSine Kind = iota
	KindCosine
	KindDC
	KindImpulse
	KindNoise
)

func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindCosine:
		return "cosine"
	case KindDC:
		return "dc"
	case KindImpulse:
		return "impulse"
	case KindNoise:
		return "noise"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a waveform name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sine", "sin":
		return KindSine, nil
	case "cosine", "cos":
		return KindCosine, nil
	case "dc":
		return KindDC, nil
	case "impulse":
		return KindImpulse, nil
	case "noise", "white":
		return KindNoise, nil
	default:
		return 0, fmt.Errorf("%w: unknown signal %q", ErrInvalidParameter, s)
	}
}

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate in Hz. Non-positive values are ignored.
func WithSampleRate(hz float64) Option {
	return func(g *Generator) {
		if hz > 0 {
			g.sampleRate = hz
		}
	}
}

// WithSeed sets the random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator at 48 kHz with seed 1 unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 48000, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Generate dispatches to the generator for kind. freqHz is ignored by
// waveforms without a frequency.
func (g *Generator) Generate(kind Kind, freqHz, amplitude float64, samples int) ([]float64, error) {
	switch kind {
	case KindSine:
		return g.Sine(freqHz, amplitude, samples)
	case KindCosine:
		return g.Cosine(freqHz, amplitude, samples)
	case KindDC:
		return g.DC(amplitude, samples)
	case KindImpulse:
		return g.Impulse(amplitude, samples)
	case KindNoise:
		return g.WhiteNoise(amplitude, samples)
	default:
		return nil, fmt.Errorf("%w: unknown signal %v", ErrInvalidParameter, kind)
	}
}

// Sine generates amplitude*sin(2*pi*f*i/fs).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.tone(math.Sin, freqHz, amplitude, samples)
}

// Cosine generates amplitude*cos(2*pi*f*i/fs).
func (g *Generator) Cosine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.tone(math.Cos, freqHz, amplitude, samples)
}

func (g *Generator) tone(wave func(float64) float64, freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * wave(step*float64(i))
	}
	return out, nil
}

// DC generates a constant signal.
func (g *Generator) DC(amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude
	}
	return out, nil
}

// Impulse generates a unit impulse scaled by amplitude at index 0.
func (g *Generator) Impulse(amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	out[0] = amplitude
	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude]. Equal seeds
// produce equal output.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0, got %v", ErrInvalidParameter, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func checkSamples(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidParameter, n)
	}
	return nil
}
