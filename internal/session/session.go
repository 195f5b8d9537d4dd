// Package session composes the engine's event sources - the fixed clock,
// the obstacle schedule, and player input - into a single ordered fold
// producing the authoritative state sequence. It replaces a reactive-stream
// merge with an explicit event queue and a priority-ordered dispatcher:
// each frame collects the events due at that tick instant, orders them
// tick > spawn > input, and applies the reducers sequentially.
package session

import (
	"github.com/birddash/birddash/internal/engine"
	"github.com/birddash/birddash/internal/schedule"
)

// Session owns one run of the game from the initial snapshot to the first
// terminal state. It is single-threaded: Advance and Jump must be called
// from the same goroutine (the Bubble Tea update loop in practice).
type Session struct {
	cfg     engine.Config
	entries []schedule.Entry
	next    int // index of the next unfired schedule entry

	state engine.State
	jumps int // flaps buffered since the previous frame
	path  []float64
	done  bool
}

// New creates a session over the given schedule. Entries must be sorted by
// spawn time, which schedule.Parse guarantees.
func New(cfg engine.Config, entries []schedule.Entry) *Session {
	return &Session{
		cfg:     cfg,
		entries: entries,
		state:   engine.NewState(cfg),
	}
}

// Jump buffers one flap for the next frame. Ignored once the session has
// reached its terminal state.
func (s *Session) Jump() {
	if s.done {
		return
	}
	s.jumps++
}

// Advance produces the next authoritative state: it collects the events
// due at the next tick instant, applies them in priority order, and
// records the bird's position for ghost replay. After the terminal state
// has been produced, Advance returns it unchanged.
func (s *Session) Advance() engine.State {
	if s.done {
		return s.state
	}

	now := s.state.Time + s.cfg.TickMs
	st := s.state
	for _, ev := range s.collectDue(now) {
		st = ev.Apply(st, s.cfg)
		if st.Ended {
			// The sequence terminates at the first terminal state, inclusive.
			break
		}
	}

	s.state = st
	s.jumps = 0
	s.path = append(s.path, st.Bird.Y)
	if st.Ended {
		s.done = true
	}
	return st
}

// collectDue builds the frame's event queue in dispatch order: exactly one
// tick, every schedule entry due at or before the new tick instant (in
// schedule order), then the buffered jumps (in arrival order). A NaN spawn
// time never compares as due, so degenerate entries never fire.
func (s *Session) collectDue(now float64) []Event {
	events := make([]Event, 0, 1+s.jumps)
	events = append(events, TickEvent{})
	for s.next < len(s.entries) && s.entries[s.next].AtMs <= now {
		events = append(events, SpawnEvent{Pipe: s.entries[s.next].Pipe})
		s.next++
	}
	for i := 0; i < s.jumps; i++ {
		events = append(events, JumpEvent{})
	}
	return events
}

// State returns the latest authoritative snapshot.
func (s *Session) State() engine.State {
	return s.state
}

// Done reports whether the terminal state has been produced.
func (s *Session) Done() bool {
	return s.done
}

// Path returns a copy of the recorded bird positions, one per tick.
// It is the input for ghost replay of this run.
func (s *Session) Path() []float64 {
	out := make([]float64, len(s.path))
	copy(out, s.path)
	return out
}
