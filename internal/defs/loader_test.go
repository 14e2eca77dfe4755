package defs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if err := LoadLevelData(defaultLevels); err != nil {
			t.Fatalf("restore defaults: %v", err)
		}
	})
}

func TestSpeedMultiplier(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 1.5},
		{3, 2.0},
		{4, 2.5},
	}

	for _, tt := range tests {
		got, err := SpeedMultiplier(tt.level)
		if err != nil {
			t.Fatalf("level %d: unexpected error %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("level %d: expected %v, got %v", tt.level, tt.want, got)
		}
	}
}

func TestSpeedMultiplierInvalidLevel(t *testing.T) {
	for _, level := range []int{0, 5, -1} {
		_, err := SpeedMultiplier(level)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
	}
}

func TestLevelsOrdered(t *testing.T) {
	levels := Levels()
	if len(levels) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(levels))
	}
	for i, def := range levels {
		if def.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, def.ID)
		}
	}
}

func TestLoadLevelDataRejectsBadTables(t *testing.T) {
	restoreDefaults(t)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", `[{"id": 1,`, "unmarshal"},
		{"empty", `[]`, "empty"},
		{"zero id", `[{"id": 0, "name": "x", "speed_multiplier": 1}]`, "id must be positive"},
		{"zero speed", `[{"id": 1, "name": "x", "speed_multiplier": 0}]`, "speed multiplier"},
		{"duplicate", `[{"id": 1, "speed_multiplier": 1}, {"id": 1, "speed_multiplier": 2}]`, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := LoadLevelData([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if len(LevelLibrary) != 4 {
				t.Fatalf("library changed on invalid table: %d levels", len(LevelLibrary))
			}
		})
	}
}

func TestLoadLevelDefinitionsFromFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "levels.json")
	data := `[{"id": 1, "name": "Slow", "speed_multiplier": 0.5}, {"id": 7, "name": "Fast", "speed_multiplier": 3}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write levels: %v", err)
	}

	if err := LoadLevelDefinitions(path); err != nil {
		t.Fatalf("load levels: %v", err)
	}
	if got, _ := SpeedMultiplier(7); got != 3 {
		t.Fatalf("expected multiplier 3 for level 7, got %v", got)
	}
	if _, err := SpeedMultiplier(2); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected level 2 to be gone, got %v", err)
	}
}

func TestLoadLevelDefinitionsMissingFile(t *testing.T) {
	err := LoadLevelDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Fatalf("expected read error, got %v", err)
	}
}
