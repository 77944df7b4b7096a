package buffer

import (
	"sync"
	"testing"
)

func TestPoolZeroValue(t *testing.T) {
	var p Pool[complex128]
	b := p.Get(10)
	if b.Len() != 10 {
		t.Fatalf("len = %d, want 10", b.Len())
	}
	p.Put(b)
	p.Put(nil)

	if got := p.Get(4).Len(); got != 4 {
		t.Fatalf("len = %d, want 4", got)
	}
}

func TestPoolConcurrent(t *testing.T) {
	var p Pool[float64]
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				b := p.Get(w + i + 1)
				d := b.Data()
				for j := range d {
					d[j] = float64(w)
				}
				for j := range d {
					if d[j] != float64(w) {
						t.Errorf("buffer shared between workers")
						return
					}
				}
				p.Put(b)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPoolGetPut(b *testing.B) {
	var p Pool[complex128]
	b.ReportAllocs()
	for range b.N {
		buf := p.Get(1024)
		p.Put(buf)
	}
}
