// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
)

//go:embed levels.json
var defaultLevels []byte

// LevelLibrary is a map to hold all level definitions, keyed by their ID.
var LevelLibrary map[int]LevelDefinition

func init() {
	if err := LoadLevelData(defaultLevels); err != nil {
		panic(fmt.Sprintf("embedded level table is broken: %v", err))
	}
}

// LoadLevelDefinitions reads a level configuration file and replaces the LevelLibrary.
func LoadLevelDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}
	if err := LoadLevelData(file); err != nil {
		return err
	}
	log.Printf("Loaded %d level definitions from %s", len(LevelLibrary), path)
	return nil
}

// LoadLevelData parses a JSON level table and replaces the LevelLibrary.
// The library is left untouched when the table is invalid.
func LoadLevelData(data []byte) error {
	var levelDefs []LevelDefinition
	if err := json.Unmarshal(data, &levelDefs); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}
	if len(levelDefs) == 0 {
		return fmt.Errorf("level definitions are empty")
	}

	library := make(map[int]LevelDefinition, len(levelDefs))
	for _, def := range levelDefs {
		if def.ID <= 0 {
			return fmt.Errorf("level %q: id must be positive, got %d", def.Name, def.ID)
		}
		if def.SpeedMultiplier <= 0 {
			return fmt.Errorf("level %d: speed multiplier must be positive, got %v", def.ID, def.SpeedMultiplier)
		}
		if _, dup := library[def.ID]; dup {
			return fmt.Errorf("level %d: duplicate id", def.ID)
		}
		library[def.ID] = def
	}

	LevelLibrary = library
	return nil
}

// SpeedMultiplier returns the ball speed multiplier for a level.
func SpeedMultiplier(level int) (float64, error) {
	def, ok := LevelLibrary[level]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return def.SpeedMultiplier, nil
}

// Levels returns all level definitions ordered by ID.
func Levels() []LevelDefinition {
	levels := make([]LevelDefinition, 0, len(LevelLibrary))
	for _, def := range LevelLibrary {
		levels = append(levels, def)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return levels
}
