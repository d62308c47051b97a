package elemtui

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("corners should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("cells past the edges should be outside")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersect(b)
	if got != NewRect(5, 5, 5, 5) {
		t.Errorf("intersect = %v", got)
	}

	c := NewRect(20, 20, 3, 3)
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("disjoint intersect = %v, want empty", got)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(Padding{Top: 1, Right: 2, Bottom: 1, Left: 3})
	if r != NewRect(3, 1, 5, 4) {
		t.Errorf("inset = %v", r)
	}
}

func TestRectInsetSaturates(t *testing.T) {
	r := NewRect(0, 0, 3, 3).Inset(PadAll(2))
	if r.W != 0 || r.H != 0 {
		t.Errorf("oversized inset = %v, want zero extent", r)
	}
	if r.Empty() != true {
		t.Error("saturated rect should be empty")
	}
}
