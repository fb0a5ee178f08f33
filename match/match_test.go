package match

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchCoordinates(t *testing.T) {
	m := New("seq1", 10, 4, 1)

	if got := m.End(); got != 14 {
		t.Errorf("End() = %d, want 14", got)
	}
	if got := m.Last(); got != 13 {
		t.Errorf("Last() = %d, want 13", got)
	}
	if !m.Contains(13) || m.Contains(14) || m.Contains(9) {
		t.Errorf("Contains() wrong at the edges of %v", m)
	}
	if got, want := m.String(), "seq1:10-13 mm=1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchOverlaps(t *testing.T) {
	tests := []struct {
		a, b Match
		want bool
	}{
		{New("s", 0, 3, 0), New("s", 2, 3, 0), true},
		{New("s", 0, 3, 0), New("s", 3, 3, 0), false},
		{New("s", 5, 1, 0), New("s", 0, 6, 0), true},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestListKeepsDiscoveryOrder(t *testing.T) {
	l := NewList(2)
	l.Push(New("s", 7, 2, 0))
	l.Push(New("s", 1, 2, 0))
	l.Push(New("s", 4, 2, 0))

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.At(1).Start != 1 {
		t.Errorf("At(1).Start = %d, want 1", l.At(1).Start)
	}

	got := l.Drain()
	want := []Match{New("s", 7, 2, 0), New("s", 1, 2, 0), New("s", 4, 2, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Drain() mismatch (-want +got):\n%s", diff)
	}
	if l.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", l.Len())
	}
}
