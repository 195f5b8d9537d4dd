package session

import (
	"github.com/birddash/birddash/internal/engine"
)

// Event is one state transformer drawn from a timed source. The dispatcher
// applies events strictly in order; concurrent-at-the-same-instant events
// are ordered by source priority: tick, then spawns, then inputs.
type Event interface {
	Apply(s engine.State, cfg engine.Config) engine.State
}

// TickEvent advances the simulation by one fixed time step.
type TickEvent struct{}

// Apply runs the tick reducer.
func (TickEvent) Apply(s engine.State, cfg engine.Config) engine.State {
	return engine.Tick(s, cfg)
}

// SpawnEvent inserts a scheduled pipe. Firing the first spawn marks the
// game as started.
type SpawnEvent struct {
	Pipe engine.Pipe
}

// Apply runs the spawn transform.
func (e SpawnEvent) Apply(s engine.State, cfg engine.Config) engine.State {
	return engine.Spawn(s, e.Pipe)
}

// JumpEvent applies the player's upward impulse.
type JumpEvent struct{}

// Apply runs the jump reducer.
func (JumpEvent) Apply(s engine.State, cfg engine.Config) engine.State {
	return engine.Jump(s, cfg)
}
