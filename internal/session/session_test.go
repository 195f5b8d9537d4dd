package session

import (
	"math"
	"reflect"
	"testing"

	"github.com/birddash/birddash/internal/engine"
	"github.com/birddash/birddash/internal/schedule"
)

func entriesAt(cfg engine.Config, atMs ...float64) []schedule.Entry {
	entries := make([]schedule.Entry, len(atMs))
	for i, at := range atMs {
		entries[i] = schedule.Entry{
			AtMs: at,
			Pipe: engine.Pipe{X: cfg.ViewportW, GapY: 200, GapHeight: 120, SpawnOffsetMs: at},
		}
	}
	return entries
}

func TestSessionSpawnTiming(t *testing.T) {
	cfg := engine.DefaultConfig()
	s := New(cfg, entriesAt(cfg, 16, 48))

	st := s.Advance() // t=16: first spawn is due
	if !st.Started {
		t.Fatal("first spawn must mark the game started")
	}
	if len(st.Pipes) != 1 {
		t.Fatalf("expected 1 pipe after first frame, got %d", len(st.Pipes))
	}
	// The spawn applies after the tick, so the pipe has not moved yet.
	if st.Pipes[0].X != cfg.ViewportW {
		t.Errorf("fresh pipe X = %f, expected %f", st.Pipes[0].X, cfg.ViewportW)
	}

	st = s.Advance() // t=32: no spawn due, the pipe advances
	if len(st.Pipes) != 1 {
		t.Fatalf("expected 1 pipe, got %d", len(st.Pipes))
	}
	if st.Pipes[0].X != cfg.ViewportW-cfg.PipeSpeed {
		t.Errorf("pipe X = %f, expected %f", st.Pipes[0].X, cfg.ViewportW-cfg.PipeSpeed)
	}

	st = s.Advance() // t=48: second spawn fires
	if len(st.Pipes) != 2 {
		t.Fatalf("expected 2 pipes, got %d", len(st.Pipes))
	}
}

func TestSessionJumpAfterTick(t *testing.T) {
	// Same-instant ordering is tick, then spawns, then inputs: the jump's
	// velocity override lands after gravity integration.
	cfg := engine.DefaultConfig()
	s := New(cfg, nil)

	s.Jump()
	st := s.Advance()

	if st.Bird.Vel != cfg.JumpImpulse {
		t.Errorf("velocity = %f, expected jump impulse %f", st.Bird.Vel, cfg.JumpImpulse)
	}
	// The tick still ran first: position moved and time advanced.
	if st.Time != cfg.TickMs {
		t.Errorf("time = %f, expected %f", st.Time, cfg.TickMs)
	}
	if st.Bird.Y == engine.NewState(cfg).Bird.Y {
		t.Error("tick integration must precede the jump")
	}
}

func TestSessionJumpBufferCleared(t *testing.T) {
	cfg := engine.DefaultConfig()
	s := New(cfg, nil)

	s.Jump()
	s.Advance()
	st := s.Advance() // no new jump: gravity pulls the impulse back down

	want := cfg.JumpImpulse + cfg.Gravity
	if st.Bird.Vel != want {
		t.Errorf("velocity = %f, expected %f (jump must not repeat)", st.Bird.Vel, want)
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := engine.DefaultConfig()

	run := func() []engine.State {
		s := New(cfg, entriesAt(cfg, 16, 400, 900))
		var states []engine.State
		for i := 0; i < 600 && !s.Done(); i++ {
			if i%14 == 0 {
				s.Jump()
			}
			states = append(states, s.Advance())
		}
		return states
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical event sequences must be identical")
	}
}

func TestSessionTermination(t *testing.T) {
	// One life and no pipes: the bird free-falls to the bottom edge and
	// the session terminates there.
	cfg := engine.DefaultConfig()
	cfg.StartLives = 1
	s := New(cfg, nil)

	var ticks int
	for ticks = 0; ticks < 10000 && !s.Done(); ticks++ {
		s.Advance()
	}
	if !s.Done() {
		t.Fatal("session never terminated")
	}

	final := s.State()
	if !final.Ended {
		t.Error("terminal state must have Ended set")
	}
	if final.Lives != 0 {
		t.Errorf("lives = %d, expected 0", final.Lives)
	}

	// The recorder holds one position per produced state.
	if got := len(s.Path()); got != ticks {
		t.Errorf("path length = %d, expected %d", got, ticks)
	}

	// Post-terminal calls are no-ops.
	s.Jump()
	if got := s.Advance(); !reflect.DeepEqual(got, final) {
		t.Error("Advance after termination must return the terminal state unchanged")
	}
	if got := len(s.Path()); got != ticks {
		t.Error("the recorder must stop at the terminal state")
	}
}

func TestSessionNaNSpawnNeverFires(t *testing.T) {
	cfg := engine.DefaultConfig()
	s := New(cfg, entriesAt(cfg, math.NaN()))

	for i := 0; i < 30; i++ {
		s.Advance()
	}

	st := s.State()
	if st.Started {
		t.Error("a NaN spawn time must never fire")
	}
	if len(st.Pipes) != 0 {
		t.Errorf("expected no pipes, got %d", len(st.Pipes))
	}
}

func TestSessionEmptySchedule(t *testing.T) {
	cfg := engine.DefaultConfig()
	s := New(cfg, nil)

	for i := 0; i < 25; i++ {
		s.Advance()
	}

	st := s.State()
	if st.Started {
		t.Error("an empty schedule must never start the game")
	}
	if st.Ended {
		t.Error("the empty pipe list must not auto-end an unstarted game")
	}
}

func TestManagerAdmissionControl(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.StartLives = 1
	m := NewManager(nil)

	first, err := m.Start(cfg, nil)
	if err != nil {
		t.Fatalf("first Start() failed: %v", err)
	}

	if _, err := m.Start(cfg, nil); err != ErrActiveSession {
		t.Fatalf("second Start() = %v, expected ErrActiveSession", err)
	}

	// Drive the first session to its terminal state.
	for i := 0; i < 10000 && !first.Done(); i++ {
		first.Advance()
	}
	if !first.Done() {
		t.Fatal("session never terminated")
	}

	second, err := m.Start(cfg, nil)
	if err != nil {
		t.Fatalf("Start() after terminal state failed: %v", err)
	}
	if second == first {
		t.Error("a new session must be a fresh instance")
	}
	if m.Current() != second {
		t.Error("Current() must track the latest admitted session")
	}
}
