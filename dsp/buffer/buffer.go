package buffer

// Element is the set of sample types a Buffer can hold.
type Element interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[T Element] struct {
	data []T
}

// New returns a zero-filled Buffer of the given length.
func New[T Element](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{data: make([]T, length)}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reusing capacity when possible. Elements that
// survive from earlier use are left as they are.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = make([]T, n)
}

// Split returns the first n elements and the remainder.
func (b *Buffer[T]) Split(n int) (head, tail []T) {
	return b.data[:n], b.data[n:]
}

// Zero sets all elements to 0.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}
