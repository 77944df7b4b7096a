package rfft

import (
	"fmt"
	"math"
	"strings"
)

// Normalization selects how transform outputs are scaled.
type Normalization int

const (
	// NormBackward leaves the forward transform unscaled and divides the
	// inverse by N.
	NormBackward Normalization = iota
	// NormNone scales neither direction; Inverse(Forward(x)) == N*x.
	NormNone
	// NormOrtho scales both directions by 1/sqrt(N).
	NormOrtho
)

// String returns the normalization name.
func (n Normalization) String() string {
	switch n {
	case NormBackward:
		return "backward"
	case NormNone:
		return "none"
	case NormOrtho:
		return "ortho"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization converts a name produced by String back into a value.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backward", "":
		return NormBackward, nil
	case "none":
		return NormNone, nil
	case "ortho", "orthonormal", "unitary":
		return NormOrtho, nil
	default:
		return NormBackward, fmt.Errorf("rfft: unsupported normalization %q", s)
	}
}

func (n Normalization) forwardScale(length int) float64 {
	if n == NormOrtho {
		return 1 / math.Sqrt(float64(length))
	}
	return 1
}

// inverseScale is applied on top of Plan.Inverse, which already divides by
// length.
func (n Normalization) inverseScale(length int) float64 {
	switch n {
	case NormNone:
		return float64(length)
	case NormOrtho:
		return math.Sqrt(float64(length))
	default:
		return 1
	}
}

// Config holds Engine settings.
type Config struct {
	Planner       *Planner
	Normalization Normalization
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a private planner with backward normalization.
func DefaultConfig() Config {
	return Config{Normalization: NormBackward}
}

// WithPlanner shares an existing plan cache. A nil planner is ignored.
func WithPlanner(p *Planner) Option {
	return func(cfg *Config) {
		if p != nil {
			cfg.Planner = p
		}
	}
}

// WithNormalization sets the scaling convention. Unknown values are ignored.
func WithNormalization(n Normalization) Option {
	return func(cfg *Config) {
		if n >= NormBackward && n <= NormOrtho {
			cfg.Normalization = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Planner == nil {
		cfg.Planner = NewPlanner()
	}
	return cfg
}
