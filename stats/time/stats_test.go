package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rfft/internal/testutil"
)

const tolerance = 1e-12

func TestLevels(t *testing.T) {
	sig := []float64{1, -3, 2, 0}

	if got := DC(sig); math.Abs(got-0) > tolerance {
		t.Fatalf("DC = %v, want 0", got)
	}
	if got := RMS(sig); math.Abs(got-math.Sqrt(14.0/4)) > tolerance {
		t.Fatalf("RMS = %v", got)
	}
	if got := Peak(sig); got != 3 {
		t.Fatalf("Peak = %v, want 3", got)
	}
}

func TestLevelsEmpty(t *testing.T) {
	if RMS(nil) != 0 || DC(nil) != 0 || Peak(nil) != 0 {
		t.Fatal("empty signal should yield zero levels")
	}
}

func TestZeroCrossingDistances(t *testing.T) {
	sig := []float64{1, -1, -1, 1, 1, 1, -1}
	got := ZeroCrossingDistances(sig)
	want := []int{2, 3}
	if len(got) != len(want) {
		t.Fatalf("distances = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("distances = %v, want %v", got, want)
		}
	}
}

func TestZeroCrossingFrequency(t *testing.T) {
	// 400 Hz at 8000 Hz is 10 samples per half period. A half-sample phase
	// offset keeps every sample clear of zero.
	sig := make([]float64, 800)
	for i := range sig {
		sig[i] = math.Sin(math.Pi * (float64(i) + 0.5) / 10)
	}

	if got := ZeroCrossingFrequency(sig, 8000); math.Abs(got-400) > 1e-9 {
		t.Fatalf("ZeroCrossingFrequency = %v, want 400", got)
	}
}

func TestZeroCrossingFrequencyDegenerate(t *testing.T) {
	if got := ZeroCrossingFrequency(testutil.DC(1, 64), 8000); got != 0 {
		t.Fatalf("DC signal = %v, want 0", got)
	}
	if got := ZeroCrossingFrequency([]float64{1, -1, 1}, 0); got != 0 {
		t.Fatalf("zero sample rate = %v, want 0", got)
	}
}
