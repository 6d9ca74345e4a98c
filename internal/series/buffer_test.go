package series

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPush_UnderCapacity(t *testing.T) {
	b := NewBuffer(5)
	b.Push(1)
	b.Push(2)
	b.Push(3)

	if got := b.Len(); got != 3 {
		t.Fatalf("expected 3 samples, got %d", got)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, b.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestPush_EvictsOldestAtCapacity(t *testing.T) {
	b := NewBuffer(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		b.Push(v)
	}

	if got := b.Len(); got != 3 {
		t.Fatalf("expected length pinned at capacity 3, got %d", got)
	}
	if diff := cmp.Diff([]float64{3, 4, 5}, b.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestPush_RetainsMostRecentFiftyInOrder(t *testing.T) {
	b := NewBuffer(Capacity)
	for i := 0; i < 120; i++ {
		b.Push(float64(i))
	}

	got := b.Values()
	if len(got) != Capacity {
		t.Fatalf("expected %d samples, got %d", Capacity, len(got))
	}

	want := make([]float64, Capacity)
	for i := range want {
		want[i] = float64(120 - Capacity + i)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("retained window mismatch (-want +got):\n%s", diff)
	}
}

func TestValues_ReturnsCopy(t *testing.T) {
	b := NewBuffer(3)
	b.Push(1)
	b.Push(2)

	snapshot := b.Values()
	b.Push(3)
	b.Push(4)

	if diff := cmp.Diff([]float64{1, 2}, snapshot); diff != "" {
		t.Errorf("snapshot mutated by later pushes (-want +got):\n%s", diff)
	}
}

func TestLast(t *testing.T) {
	b := NewBuffer(3)

	if _, ok := b.Last(); ok {
		t.Error("expected Last to report empty buffer")
	}

	b.Push(7)
	b.Push(9)
	v, ok := b.Last()
	if !ok || v != 9 {
		t.Errorf("expected (9, true), got (%v, %v)", v, ok)
	}
}

func TestAnyPositive(t *testing.T) {
	b := NewBuffer(4)

	if b.AnyPositive() {
		t.Error("empty buffer should not report positive samples")
	}

	b.Push(0)
	b.Push(0)
	if b.AnyPositive() {
		t.Error("all-sentinel buffer should not report positive samples")
	}

	b.Push(42.5)
	if !b.AnyPositive() {
		t.Error("expected positive sample to be detected")
	}

	// The positive sample keeps gating until it ages out of the window.
	b.Push(0)
	b.Push(0)
	b.Push(0)
	if b.AnyPositive() {
		t.Error("expected positive sample to age out after eviction")
	}
}

func TestNewBuffer_DefaultCapacity(t *testing.T) {
	b := NewBuffer(0)
	if got := b.Cap(); got != Capacity {
		t.Errorf("expected default capacity %d, got %d", Capacity, got)
	}
}
