package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},   // top-left corner
		{5, 7, true},   // bottom-right interior
		{6, 3, false},  // right edge is exclusive
		{2, 8, false},  // bottom edge is exclusive
		{1, 3, false},  // left of rect
		{2, 2, false},  // above rect
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	if r.Right() != 11 {
		t.Errorf("Right() = %d, want 11", r.Right())
	}
	if r.Bottom() != 22 {
		t.Errorf("Bottom() = %d, want 22", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5,0,1) = %f", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1,0,1) = %f", got)
	}
	if got := ClampF(1.7, 0, 1); got != 1 {
		t.Errorf("ClampF(1.7,0,1) = %f", got)
	}
}
