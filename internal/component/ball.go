package component

// Ball marks the entity the player keeps in play.
type Ball struct {
	Radius float64
	// SpeedMultiplier scales Velocity each tick; set from the level.
	SpeedMultiplier float64
	// ServeTimer counts ticks until the ball starts moving after a serve.
	ServeTimer int
}
