package buffer

import "sync"

// Pool recycles Buffers through a sync.Pool. The zero value is ready to use.
type Pool[T Element] struct {
	pool sync.Pool
}

// Get returns a Buffer of the requested length. Its contents are unspecified;
// callers that need zeros must clear it. Return it with Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b, _ := p.pool.Get().(*Buffer[T])
	if b == nil {
		b = &Buffer[T]{}
	}
	b.Resize(length)
	return b
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
