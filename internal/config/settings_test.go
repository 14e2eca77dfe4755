package config

import (
	"strings"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.Level != 0 {
		t.Fatalf("expected default level 0, got %d", s.Level)
	}
	if s.Mute {
		t.Fatal("expected sound enabled by default")
	}
	if s.Seed != 0 {
		t.Fatalf("expected default seed 0, got %d", s.Seed)
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("BREAKOUT_LEVEL", "3")
	t.Setenv("BREAKOUT_MUTE", "true")
	t.Setenv("BREAKOUT_SEED", "42")
	t.Setenv("BREAKOUT_LEVELS_FILE", "/tmp/levels.json")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.Level != 3 || !s.Mute || s.Seed != 42 || s.LevelsFile != "/tmp/levels.json" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "two"},
		{"negative", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BREAKOUT_LEVEL", tt.value)
			_, err := LoadSettings()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "parse env:") {
				t.Fatalf("expected parse env prefix, got %v", err)
			}
		})
	}
}

func TestBrickWidthFitsArena(t *testing.T) {
	if BrickWidth != 36 {
		t.Fatalf("expected brick width 36, got %d", BrickWidth)
	}
	row := BricksPerRow*BrickWidth + (BricksPerRow-1)*BrickSep
	if row > ArenaWidth {
		t.Fatalf("brick row %d wider than arena %d", row, ArenaWidth)
	}
	if BrickRows/RowsPerBand != len(BrickColors) {
		t.Fatalf("expected %d color bands, got %d", BrickRows/RowsPerBand, len(BrickColors))
	}
}
