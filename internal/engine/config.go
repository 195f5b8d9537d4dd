package engine

// Config holds the world-simulation parameters.
// All coordinates are in viewport units with y growing downward.
type Config struct {
	ViewportW float64 // World width
	ViewportH float64 // World height
	BirdW     float64 // Bird sprite width
	BirdH     float64 // Bird sprite height
	BirdXFrac float64 // Bird's fixed horizontal position as a fraction of ViewportW

	Gravity     float64 // Downward acceleration per tick
	JumpImpulse float64 // Velocity set on flap (negative = up)
	PipeWidth   float64 // Horizontal extent of every pipe
	PipeSpeed   float64 // Leftward pipe movement per tick
	TickMs      float64 // Duration of one tick in milliseconds

	Seed       int64 // Base seed for knockback derivation
	StartLives int   // Lives at session start
}

// BirdX returns the bird's fixed horizontal position. It is derived,
// never stored on the state.
func (c Config) BirdX() float64 {
	return c.ViewportW * c.BirdXFrac
}

// DefaultConfig returns the standard world parameters.
func DefaultConfig() Config {
	return Config{
		ViewportW:   600,
		ViewportH:   400,
		BirdW:       42,
		BirdH:       30,
		BirdXFrac:   0.25,
		Gravity:     0.4,
		JumpImpulse: -7,
		PipeWidth:   50,
		PipeSpeed:   3,
		TickMs:      16,
		Seed:        1234,
		StartLives:  3,
	}
}
