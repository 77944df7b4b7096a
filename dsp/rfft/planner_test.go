package rfft

import (
	"errors"
	"sync"
	"testing"
)

func TestPlannerCachesPlans(t *testing.T) {
	pl := NewPlanner()

	a, err := pl.PlanForward(1024)
	if err != nil {
		t.Fatalf("PlanForward: %v", err)
	}
	b, err := pl.PlanForward(1024)
	if err != nil {
		t.Fatalf("PlanForward: %v", err)
	}
	if a != b {
		t.Fatal("PlanForward(1024) returned different instances")
	}
	if pl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", pl.Len())
	}
}

func TestPlannerForwardAndInverseAreDistinct(t *testing.T) {
	pl := NewPlanner()

	fwd, err := pl.PlanForward(64)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := pl.PlanInverse(64)
	if err != nil {
		t.Fatal(err)
	}

	if fwd == inv {
		t.Fatal("forward and inverse plans share an instance")
	}
	if fwd.Direction() != Forward || inv.Direction() != Inverse {
		t.Fatalf("directions: fwd=%v inv=%v", fwd.Direction(), inv.Direction())
	}
	if pl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", pl.Len())
	}
}

func TestPlannerValidation(t *testing.T) {
	pl := NewPlanner()

	if _, err := pl.PlanForward(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("PlanForward(0) error = %v", err)
	}
	for _, n := range []int{0, 1, 3, 1025} {
		if _, err := pl.PlanInverse(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("PlanInverse(%d) error = %v", n, err)
		}
	}
	if pl.Len() != 0 {
		t.Fatalf("failed requests populated the cache: Len = %d", pl.Len())
	}
}

func TestPlannerZeroValue(t *testing.T) {
	var pl Planner
	p, err := pl.PlanForward(12)
	if err != nil {
		t.Fatalf("PlanForward on zero Planner: %v", err)
	}
	if p.Len() != 12 || pl.Len() != 1 {
		t.Fatalf("unexpected state: plan len=%d cache len=%d", p.Len(), pl.Len())
	}
}

func TestPlannerConcurrentFirstUse(t *testing.T) {
	pl := NewPlanner()
	sizes := []int{96, 1000, 2018}

	const workers = 16
	results := make([][]*Plan, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range sizes {
				p, err := pl.PlanForward(n)
				if err != nil {
					t.Errorf("PlanForward(%d): %v", n, err)
					return
				}
				results[w] = append(results[w], p)
			}
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		if len(results[w]) != len(sizes) {
			t.Fatalf("worker %d finished %d of %d plans", w, len(results[w]), len(sizes))
		}
		for i := range sizes {
			if results[w][i] != results[0][i] {
				t.Fatalf("worker %d got a different plan for size %d", w, sizes[i])
			}
		}
	}
	if pl.Len() != len(sizes) {
		t.Fatalf("Len = %d, want %d", pl.Len(), len(sizes))
	}
}

func TestPlannerConcurrentExecution(t *testing.T) {
	e := New()
	sig := make([]float64, 960)
	for i := range sig {
		sig[i] = float64(i%11) - 5
	}
	want, err := e.Forward(sig)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				got, err := e.Forward(sig)
				if err != nil {
					t.Errorf("Forward: %v", err)
					return
				}
				for i := range got {
					if got[i] != want[i] {
						t.Errorf("concurrent Forward differs at %d: %v != %v", i, got[i], want[i])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
