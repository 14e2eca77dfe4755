package utils

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 20, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Inside", NewRect(15, 12, 2, 2), true},
		{"Overlap corner", NewRect(25, 15, 20, 20), true},
		{"Touching right edge", NewRect(30, 10, 5, 5), false},
		{"Touching bottom edge", NewRect(10, 20, 5, 5), false},
		{"Left of", NewRect(0, 10, 5, 5), false},
		{"Above", NewRect(10, 0, 5, 5), false},
		{"Covers", NewRect(0, 0, 100, 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(0, 0) {
		t.Error("expected top-left corner to be inside")
	}
	if r.Contains(10, 5) {
		t.Error("expected right edge to be outside")
	}
	if cx, cy := r.Center(); cx != 5 || cy != 5 {
		t.Errorf("expected center (5, 5), got (%v, %v)", cx, cy)
	}
}

func TestRectOverlap(t *testing.T) {
	a := NewRect(0, 0, 20, 20)
	b := NewRect(15, 18, 20, 20)

	dx, dy := a.Overlap(b)
	if dx != 5 || dy != 2 {
		t.Fatalf("expected overlap (5, 2), got (%v, %v)", dx, dy)
	}

	dx, dy = a.Overlap(NewRect(50, 50, 1, 1))
	if dx != 0 || dy != 0 {
		t.Fatalf("expected no overlap, got (%v, %v)", dx, dy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		if a.RangeFloat(1, 3) != b.RangeFloat(1, 3) {
			t.Fatal("same seed produced different sequences")
		}
		if a.Sign() != b.Sign() {
			t.Fatal("same seed produced different signs")
		}
	}
}

func TestPRNGRangeFloat(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := rng.RangeFloat(0.5, 1.5)
		if v < 0.5 || v >= 1.5 {
			t.Fatalf("value %v out of range", v)
		}
		s := rng.Sign()
		if s != 1 && s != -1 {
			t.Fatalf("unexpected sign %v", s)
		}
	}
	if got := rng.RangeFloat(2, 2); got != 2 {
		t.Fatalf("expected degenerate range to return min, got %v", got)
	}
}
