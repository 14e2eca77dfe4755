package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBrickColor(t *testing.T) {
	palette := DefaultArenaColors()
	base := color.RGBA{200, 0, 0, 255}

	tests := []struct {
		name    string
		cracked bool
		flash   float64
		want    color.RGBA
	}{
		{"Fresh", false, 0, base},
		{"Cracked", true, 0, color.RGBA{100, 0, 0, 255}},
		{"Full flash", true, 1, palette.FlashColor},
		{"Flash over range", false, 2, palette.FlashColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BrickColor(base, tt.cracked, tt.flash, palette); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLerpColorMidpoint(t *testing.T) {
	got := LerpColor(color.RGBA{0, 0, 0, 0}, color.RGBA{200, 100, 50, 255}, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("unexpected midpoint %v", got)
	}
}
