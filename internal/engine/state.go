// Package engine implements the deterministic state-transition core:
// per-tick physics, pipe collision and scoring, knockback, and the
// reducers the session layer folds over. Every transition is a pure
// function from one immutable State snapshot to the next; nothing in
// this package keeps mutable state of its own.
package engine

// Bird is the player entity. Value type: a "mutation" is always a full
// replacement. Horizontal position is derived from the config, not stored.
type Bird struct {
	Y   float64 // Vertical position
	Vel float64 // Vertical velocity (positive = falling)
}

// Pipe is a vertical obstacle with a gap. Value type; evaluation returns
// a new Pipe rather than mutating in place. Collided and Passed are
// one-shot: once true they never revert, and at most one of them becomes
// true as the result of a single tick.
type Pipe struct {
	X             float64 // Left edge, strictly decreasing each tick
	GapY          float64 // Vertical center of the gap
	GapHeight     float64 // Full height of the gap
	SpawnOffsetMs float64 // Scheduled spawn time relative to session start
	Collided      bool
	Passed        bool
}

// TrailingEdge returns the x-coordinate of the pipe's right edge.
func (p Pipe) TrailingEdge(pipeWidth float64) float64 {
	return p.X + pipeWidth
}

// State is one authoritative snapshot of the game. Snapshots form an
// append-only sequence produced by the session fold; a reducer never
// writes through to a previous snapshot's pipe slice.
type State struct {
	Bird    Bird
	Pipes   []Pipe
	Score   int
	Lives   int
	Ended   bool    // Terminal: once set, every reducer returns the state unchanged
	Started bool    // Set once, on the first pipe spawn
	Time    float64 // Elapsed game time in milliseconds
}

// NewState returns the fixed initial snapshot for a session.
func NewState(cfg Config) State {
	return State{
		Bird:  Bird{Y: cfg.ViewportH / 2},
		Pipes: []Pipe{},
		Lives: cfg.StartLives,
	}
}

// Spawn inserts a scheduled pipe and marks the game as started.
// The pipe slice is copied so earlier snapshots stay untouched.
func Spawn(s State, p Pipe) State {
	if s.Ended {
		return s
	}
	pipes := make([]Pipe, len(s.Pipes), len(s.Pipes)+1)
	copy(pipes, s.Pipes)
	s.Pipes = append(pipes, p)
	s.Started = true
	return s
}
