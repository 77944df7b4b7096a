package rfft

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

type planKey struct {
	n   int
	dir Direction
}

func (k planKey) String() string {
	return k.dir.String() + "/" + strconv.Itoa(k.n)
}

// Planner caches real transform plans by length and direction.
//
// Lookups of existing plans only take a read lock. The first request for a
// key builds the plan outside any lock; concurrent requests for the same key
// wait for that single build and share its result. The zero value is ready to
// use.
type Planner struct {
	mu    sync.RWMutex
	plans map[planKey]*Plan
	group singleflight.Group
}

// NewPlanner returns an empty plan cache.
func NewPlanner() *Planner {
	return &Planner{plans: make(map[planKey]*Plan)}
}

// PlanForward returns the cached forward plan for signals of the given
// length, building it on first use. length must be >= 1.
func (pl *Planner) PlanForward(length int) (*Plan, error) {
	return pl.plan(length, Forward)
}

// PlanInverse returns the cached inverse plan that reconstructs signals of
// the given length. length is the time-domain output length, 2*(entries-1)
// for a half spectrum of entries bins; it must be even and >= 2.
func (pl *Planner) PlanInverse(length int) (*Plan, error) {
	return pl.plan(length, Inverse)
}

// Len returns the number of cached plans.
func (pl *Planner) Len() int {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return len(pl.plans)
}

func (pl *Planner) plan(n int, dir Direction) (*Plan, error) {
	if err := validateLength(n, dir); err != nil {
		return nil, err
	}

	key := planKey{n: n, dir: dir}
	if p, ok := pl.lookup(key); ok {
		return p, nil
	}

	v, err, _ := pl.group.Do(key.String(), func() (any, error) {
		if p, ok := pl.lookup(key); ok {
			return p, nil
		}

		p, err := newPlan(n, dir)
		if err != nil {
			return nil, err
		}

		pl.mu.Lock()
		defer pl.mu.Unlock()
		if pl.plans == nil {
			pl.plans = make(map[planKey]*Plan)
		}
		if existing, ok := pl.plans[key]; ok {
			return existing, nil
		}
		pl.plans[key] = p
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Plan), nil
}

func (pl *Planner) lookup(key planKey) (*Plan, bool) {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	p, ok := pl.plans[key]
	return p, ok
}
