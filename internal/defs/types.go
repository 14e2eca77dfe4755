// internal/defs/types.go
package defs

import "errors"

// ErrInvalidLevel is returned for a level number missing from the level table.
var ErrInvalidLevel = errors.New("invalid level number")

// LevelDefinition holds the static data for one difficulty level.
type LevelDefinition struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
}
