package assets

import "testing"

func TestFaceCached(t *testing.T) {
	m := NewFontManager()
	a := m.Face(18)
	b := m.Face(18)
	if a != b {
		t.Fatal("expected the same face for the same size")
	}
	if m.Face(36) == a {
		t.Fatal("expected a different face for a different size")
	}
}

func TestMeasureStringGrowsWithSize(t *testing.T) {
	m := NewFontManager()
	small := MeasureString(m.Face(12), "You won!")
	large := MeasureString(m.Face(36), "You won!")
	if small <= 0 {
		t.Fatalf("expected positive width, got %d", small)
	}
	if large <= small {
		t.Fatalf("expected larger face to be wider: %d <= %d", large, small)
	}
}
