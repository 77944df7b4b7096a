// Command rfftinfo runs a real FFT over a generated or loaded signal and
// prints its spectrum and a few cross-checks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-rfft/dsp/rfft"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, fv := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := resolveConfig(fs, fv)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	signal, err := loadSignal(cfg, stdin)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	engine := rfft.New(rfft.WithNormalization(cfg.norm))

	r, err := analyze(engine, signal, cfg.SampleRate)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	switch strings.ToLower(cfg.Show) {
	case "packed":
		err = printPacked(stdout, r)
	case "magnitude":
		err = printMagnitude(stdout, r)
	default:
		err = printSummary(stdout, r)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
