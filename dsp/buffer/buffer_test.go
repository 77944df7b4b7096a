package buffer

import "testing"

func TestNew(t *testing.T) {
	b := New[float64](4)
	if b.Len() != 4 || b.Cap() < 4 {
		t.Fatalf("len=%d cap=%d", b.Len(), b.Cap())
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %v, want 0", i, v)
		}
	}

	if got := New[complex128](-3).Len(); got != 0 {
		t.Fatalf("negative length gives %d, want 0", got)
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	b := New[complex128](8)
	before := &b.Data()[0]

	b.Resize(3)
	if b.Len() != 3 || &b.Data()[0] != before {
		t.Fatal("shrinking should keep the backing array")
	}

	b.Resize(8)
	if &b.Data()[0] != before {
		t.Fatal("growing within capacity should keep the backing array")
	}

	b.Resize(16)
	if b.Len() != 16 {
		t.Fatalf("len = %d, want 16", b.Len())
	}

	b.Resize(-1)
	if b.Len() != 0 {
		t.Fatalf("negative resize len = %d, want 0", b.Len())
	}
}

func TestSplitAndZero(t *testing.T) {
	b := New[float32](5)
	for i := range b.Data() {
		b.Data()[i] = float32(i + 1)
	}

	head, tail := b.Split(2)
	if len(head) != 2 || len(tail) != 3 || tail[0] != 3 {
		t.Fatalf("head=%v tail=%v", head, tail)
	}

	b.Zero()
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %v after Zero", i, v)
		}
	}
}
