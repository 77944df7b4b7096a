package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rfft/dsp/signal"
)

// loadSignal returns the samples described by cfg, either read from
// cfg.Input or generated.
func loadSignal(cfg config, stdin io.Reader) ([]float64, error) {
	if cfg.Input == "" {
		return generate(cfg)
	}

	if cfg.Input == "-" {
		return readSamples(stdin)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return readSamples(f)
}

func generate(cfg config) ([]float64, error) {
	kind, err := signal.ParseKind(cfg.Signal)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	g := signal.NewGenerator(signal.WithSampleRate(cfg.SampleRate), signal.WithSeed(cfg.Seed))
	out, err := g.Generate(kind, cfg.Frequency, cfg.Amplitude, cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return out, nil
}

// readSamples parses numbers separated by whitespace or commas. Lines
// starting with '#' are comments.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("input: line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("input: no samples")
	}
	return out, nil
}
