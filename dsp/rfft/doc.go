// Package rfft provides planned real-input Fourier transforms.
//
// A real signal of length N maps to a half spectrum of N/2+1 complex bins;
// the remaining bins are the conjugate mirror and are never materialized.
// Bin k corresponds to frequency k/N * sampleRate.
//
// # Plans and the Planner
//
// A [Plan] holds everything needed to transform one length in one direction.
// Plans are immutable and safe to share. A [Planner] caches plans by
// (length, direction), building each one at most once even under concurrent
// first requests. Plans are never evicted; callers typically use a small,
// stable set of lengths.
//
//	planner := rfft.NewPlanner()
//	plan, err := planner.PlanForward(1024)
//
// Transforms run on algo-fft plans. Even lengths use its real plan, an
// N/2-point complex transform over paired samples followed by a twiddle
// recombination. Odd lengths are promoted to an N-point complex plan, which
// algo-fft factors by mixed radix or, for awkward lengths, Bluestein. Inverse
// plans require an even length >= 2 because a half spectrum of E entries
// always reconstructs 2*(E-1) samples. [Plan.Inverse] already divides by N.
//
// # Engine
//
// [Engine] layers the user-facing operations over a Planner:
//
//	e := rfft.New()
//	packed, err := e.Forward(signal)          // re0, im0, re1, im1, ...
//	mag, err := e.ForwardMagnitude(signal)    // |X[k]|
//	bin, err := e.PeakBin(signal)             // first maximum wins
//	signal, err = e.Inverse(packed)
//
// With the default [NormBackward] convention the forward transform is
// unscaled and the inverse divides by N, so Inverse(Forward(x)) == x up to
// rounding. Input slices are never modified.
//
// # Errors
//
// Length problems are reported as [ErrInvalidLength] and an empty peak search
// as [ErrEmptySpectrum], always before any numeric work. Use errors.Is to
// match them.
package rfft
