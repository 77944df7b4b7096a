package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rfft/dsp/rfft"
	"github.com/cwbudde/algo-rfft/dsp/spectrum"
	frequencystats "github.com/cwbudde/algo-rfft/stats/frequency"
	timestats "github.com/cwbudde/algo-rfft/stats/time"
)

type report struct {
	Length        int
	SampleRate    float64
	Normalization rfft.Normalization
	Strategy      string

	Packed    []float64
	Magnitude []float64

	RMS          float64
	Peak         frequencystats.Peak
	Centroid     float64
	ZeroCrossing float64

	GoertzelMagnitude float64

	// RoundTripError is NaN when the length is odd and the inverse is
	// unavailable.
	RoundTripError float64
}

func analyze(e *rfft.Engine, signal []float64, sampleRate float64) (report, error) {
	n := len(signal)
	r := report{
		Length:         n,
		SampleRate:     sampleRate,
		Normalization:  e.Normalization(),
		RoundTripError: math.NaN(),
	}

	plan, err := e.Planner().PlanForward(n)
	if err != nil {
		return report{}, err
	}
	r.Strategy = plan.Strategy().String()

	if r.Packed, err = e.Forward(signal); err != nil {
		return report{}, err
	}
	r.Magnitude = spectrum.MagnitudePacked(r.Packed)

	if r.Peak, err = frequencystats.DominantFrequency(r.Magnitude, n, sampleRate); err != nil {
		return report{}, err
	}
	r.Centroid = frequencystats.Centroid(r.Magnitude, n, sampleRate)
	r.RMS = timestats.RMS(signal)
	r.ZeroCrossing = timestats.ZeroCrossingFrequency(signal, sampleRate)

	fscale := 1.0
	if r.Normalization == rfft.NormOrtho {
		fscale = 1 / math.Sqrt(float64(n))
	}
	r.GoertzelMagnitude = cmplx.Abs(spectrum.Goertzel(signal, r.Peak.Bin)) * fscale

	if n >= 2 && n%2 == 0 {
		back, err := e.Inverse(r.Packed)
		if err != nil {
			return report{}, err
		}
		want := signal
		if r.Normalization == rfft.NormNone {
			want = floats.ScaleTo(make([]float64, n), float64(n), signal)
		}
		r.RoundTripError = floats.Distance(back, want, math.Inf(1))
	}
	return r, nil
}

func printSummary(out io.Writer, r report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Property\tValue\n")
	fmt.Fprintf(w, "--------\t-----\n")
	fmt.Fprintf(w, "Length\t%d\n", r.Length)
	fmt.Fprintf(w, "Sample rate\t%g Hz\n", r.SampleRate)
	fmt.Fprintf(w, "Spectrum bins\t%d\n", len(r.Magnitude))
	fmt.Fprintf(w, "Bin spacing\t%.4f Hz\n", r.SampleRate/float64(r.Length))
	fmt.Fprintf(w, "Strategy\t%s\n", r.Strategy)
	fmt.Fprintf(w, "Normalization\t%s\n", r.Normalization)
	fmt.Fprintf(w, "RMS\t%.6f\n", r.RMS)
	fmt.Fprintf(w, "Peak bin\t%d\n", r.Peak.Bin)
	fmt.Fprintf(w, "Peak magnitude\t%.6f\n", r.Peak.Magnitude)
	fmt.Fprintf(w, "Dominant frequency\t%.4f Hz\n", r.Peak.Frequency)
	fmt.Fprintf(w, "Spectral centroid\t%.4f Hz\n", r.Centroid)
	fmt.Fprintf(w, "Zero-crossing estimate\t%.4f Hz\n", r.ZeroCrossing)
	fmt.Fprintf(w, "Goertzel |X[peak]|\t%.6f\n", r.GoertzelMagnitude)
	if math.IsNaN(r.RoundTripError) {
		fmt.Fprintf(w, "Round-trip error\tn/a (odd length)\n")
	} else {
		fmt.Fprintf(w, "Round-trip error\t%.3e\n", r.RoundTripError)
	}
	return w.Flush()
}

func printPacked(out io.Writer, r report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Bin\tFrequency (Hz)\tRe\tIm\n")
	fmt.Fprintf(w, "---\t--------------\t--\t--\n")
	for k := 0; k < len(r.Packed)/2; k++ {
		fmt.Fprintf(w, "%d\t%.4f\t%.6f\t%.6f\n",
			k, frequencystats.BinFrequency(k, r.Length, r.SampleRate), r.Packed[2*k], r.Packed[2*k+1])
	}
	return w.Flush()
}

func printMagnitude(out io.Writer, r report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Bin\tFrequency (Hz)\tMagnitude\tdB\n")
	fmt.Fprintf(w, "---\t--------------\t---------\t--\n")
	for k, m := range r.Magnitude {
		db := math.Inf(-1)
		if m > 0 {
			db = 20 * math.Log10(m)
		}
		fmt.Fprintf(w, "%d\t%.4f\t%.6f\t%.2f\n",
			k, frequencystats.BinFrequency(k, r.Length, r.SampleRate), m, db)
	}
	return w.Flush()
}
