package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rfft/dsp/rfft"
)

// config collects every tunable of a run. Values come from defaults, then an
// optional YAML file, then flags that were set explicitly.
type config struct {
	Size          int     `yaml:"size"`
	SampleRate    float64 `yaml:"sample_rate"`
	Signal        string  `yaml:"signal"`
	Frequency     float64 `yaml:"frequency"`
	Amplitude     float64 `yaml:"amplitude"`
	Seed          int64   `yaml:"seed"`
	Input         string  `yaml:"input"`
	Normalization string  `yaml:"normalization"`
	Show          string  `yaml:"show"`

	// norm is Normalization parsed by validate.
	norm rfft.Normalization
}

func defaultConfig() config {
	return config{
		Size:          1024,
		SampleRate:    48000,
		Signal:        "sine",
		Frequency:     1000,
		Amplitude:     1,
		Seed:          1,
		Normalization: rfft.NormBackward.String(),
		Show:          "summary",
	}
}

// decodeConfig overlays YAML onto cfg. Unknown keys are rejected.
func decodeConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return decodeConfig(bytes.NewReader(data), cfg)
}

// flagValues mirrors config for flag parsing so file values are only
// overridden by flags the user actually set.
type flagValues struct {
	configPath string
	cfg        config
}

func newFlagSet(out io.Writer) (*flag.FlagSet, *flagValues) {
	fv := &flagValues{cfg: defaultConfig()}
	fs := flag.NewFlagSet("rfftinfo", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&fv.configPath, "config", "", "YAML config file; explicit flags override its values")
	fs.IntVar(&fv.cfg.Size, "size", fv.cfg.Size, "generated signal length in samples")
	fs.Float64Var(&fv.cfg.SampleRate, "rate", fv.cfg.SampleRate, "sample rate in Hz")
	fs.StringVar(&fv.cfg.Signal, "signal", fv.cfg.Signal, "generated signal: sine, cosine, dc, impulse, noise")
	fs.Float64Var(&fv.cfg.Frequency, "freq", fv.cfg.Frequency, "tone frequency in Hz for sine/cosine")
	fs.Float64Var(&fv.cfg.Amplitude, "amp", fv.cfg.Amplitude, "signal amplitude")
	fs.Int64Var(&fv.cfg.Seed, "seed", fv.cfg.Seed, "noise seed")
	fs.StringVar(&fv.cfg.Input, "in", "", "read whitespace or comma separated samples from file (\"-\" for stdin) instead of generating")
	fs.StringVar(&fv.cfg.Normalization, "norm", fv.cfg.Normalization, "normalization: backward, none, ortho")
	fs.StringVar(&fv.cfg.Show, "show", fv.cfg.Show, "output: summary, packed, magnitude")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: rfftinfo [flags]\n\n")
		fmt.Fprintf(out, "Runs a real FFT over a generated or loaded signal and reports its spectrum.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  rfftinfo -size 1000 -rate 8000 -freq 440\n")
		fmt.Fprintf(out, "  rfftinfo -signal noise -show magnitude -size 64\n")
		fmt.Fprintf(out, "  rfftinfo -in samples.txt -rate 44100\n")
		fmt.Fprintf(out, "  rfftinfo -config analysis.yaml -norm ortho\n")
	}
	return fs, fv
}

// resolveConfig merges defaults, the config file and explicitly set flags.
func resolveConfig(fs *flag.FlagSet, fv *flagValues) (config, error) {
	cfg := defaultConfig()
	if fv.configPath != "" {
		if err := loadConfigFile(fv.configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = fv.cfg.Size
		case "rate":
			cfg.SampleRate = fv.cfg.SampleRate
		case "signal":
			cfg.Signal = fv.cfg.Signal
		case "freq":
			cfg.Frequency = fv.cfg.Frequency
		case "amp":
			cfg.Amplitude = fv.cfg.Amplitude
		case "seed":
			cfg.Seed = fv.cfg.Seed
		case "in":
			cfg.Input = fv.cfg.Input
		case "norm":
			cfg.Normalization = fv.cfg.Normalization
		case "show":
			cfg.Show = fv.cfg.Show
		}
	})

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// validate checks c and records the parsed normalization.
func (c *config) validate() error {
	if c.Input == "" && c.Size < 1 {
		return fmt.Errorf("config: size must be >= 1, got %d", c.Size)
	}
	if !(c.SampleRate > 0) {
		return fmt.Errorf("config: sample rate must be > 0, got %v", c.SampleRate)
	}
	norm, err := rfft.ParseNormalization(c.Normalization)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.norm = norm
	switch strings.ToLower(c.Show) {
	case "summary", "packed", "magnitude":
	default:
		return fmt.Errorf("config: unknown show mode %q", c.Show)
	}
	return nil
}
