package engine

import (
	"reflect"
	"testing"
)

func TestTickTerminalAbsorption(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Ended = true
	s.Score = 7
	s.Lives = 0

	next := Tick(s, cfg)
	if !reflect.DeepEqual(next, s) {
		t.Errorf("terminal state must be absorbed unchanged: got %+v", next)
	}

	// The other reducers absorb too.
	if got := Jump(s, cfg); !reflect.DeepEqual(got, s) {
		t.Error("Jump must not modify a terminal state")
	}
	if got := Spawn(s, Pipe{X: cfg.ViewportW}); !reflect.DeepEqual(got, s) {
		t.Error("Spawn must not modify a terminal state")
	}
}

func TestTickGravityIntegration(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg) // bird at 200, velocity 0

	next := Tick(s, cfg)

	if next.Bird.Vel != 0.4 {
		t.Errorf("velocity = %f, expected 0.4", next.Bird.Vel)
	}
	if next.Bird.Y != 200.4 {
		t.Errorf("position = %f, expected 200.4", next.Bird.Y)
	}
	if next.Time != 16 {
		t.Errorf("time = %f, expected 16", next.Time)
	}
	if next.Lives != 3 || next.Ended {
		t.Errorf("free fall mid-viewport must not cost a life or end: %+v", next)
	}
}

func TestTickTopBoundary(t *testing.T) {
	// The documented example: bird on the top edge at velocity 2 with
	// gravity 0.4 loses a life and bounces downward.
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Bird = Bird{Y: 0, Vel: 2}

	next := Tick(s, cfg)

	if next.Lives != 2 {
		t.Errorf("lives = %d, expected 2", next.Lives)
	}
	delta := next.Bird.Vel - 2.4 // gravity-integrated velocity was 2.4
	if delta < KnockMin || delta > KnockMax {
		t.Errorf("boundary delta = %f, expected in [%f, %f]", delta, KnockMin, KnockMax)
	}
	if next.Bird.Y != 0+next.Bird.Vel {
		t.Errorf("final position must re-integrate from the pre-tick baseline: Y = %f", next.Bird.Y)
	}
	if next.Ended {
		t.Error("two lives remain, game must not end")
	}
}

func TestTickBottomBoundary(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Bird = Bird{Y: cfg.ViewportH, Vel: 3}

	next := Tick(s, cfg)

	if next.Lives != 2 {
		t.Errorf("lives = %d, expected 2", next.Lives)
	}
	delta := next.Bird.Vel - 3.4
	if delta < -KnockMax || delta > -KnockMin {
		t.Errorf("bottom boundary delta = %f, expected in [%f, %f]", delta, -KnockMax, -KnockMin)
	}
}

func TestTickSingleLifeLossPerTick(t *testing.T) {
	// Two pipes collide on the same tick; exactly one life is lost.
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Started = true
	s.Bird = Bird{Y: 50, Vel: 0}
	s.Pipes = []Pipe{
		{X: 130, GapY: 200, GapHeight: 100},
		{X: 160, GapY: 250, GapHeight: 100},
	}

	next := Tick(s, cfg)

	if next.Lives != 2 {
		t.Errorf("lives = %d, expected 2 after simultaneous collisions", next.Lives)
	}
	for i, p := range next.Pipes {
		if !p.Collided {
			t.Errorf("pipe %d should be marked collided", i)
		}
	}
}

func TestTickEndOfObstacles(t *testing.T) {
	// The last pipe's trailing edge leaves the viewport: completion even
	// with lives remaining.
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Started = true
	s.Pipes = []Pipe{{X: -48, GapY: 200, GapHeight: 100, Passed: true}}

	next := Tick(s, cfg)

	if len(next.Pipes) != 0 {
		t.Fatalf("pipe should be filtered out, got %d pipes", len(next.Pipes))
	}
	if !next.Ended {
		t.Error("running out of obstacles must end the game")
	}
	if next.Lives != 3 {
		t.Errorf("lives = %d, expected 3 (completion, not loss)", next.Lives)
	}
}

func TestTickEmptyPipesBeforeStart(t *testing.T) {
	// With no schedule the game never starts and the empty pipe list must
	// not trigger the completion condition.
	cfg := DefaultConfig()
	s := NewState(cfg)

	for i := 0; i < 20; i++ {
		s = Tick(s, cfg)
	}

	if s.Started {
		t.Error("game must not start without a spawn")
	}
	if s.Ended {
		t.Error("empty pipe list before the first spawn must not end the game")
	}
}

func TestTickScoring(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Started = true
	s.Pipes = []Pipe{
		{X: 10, GapY: 200, GapHeight: 100}, // trailing edge 60, bird at 150
		{X: 400, GapY: 200, GapHeight: 100},
	}

	next := Tick(s, cfg)

	if next.Score != 1 {
		t.Errorf("score = %d, expected 1", next.Score)
	}
	if !next.Pipes[0].Passed {
		t.Error("passed pipe must be flagged")
	}
	if next.Pipes[1].Passed {
		t.Error("far pipe must not be flagged")
	}
}

func TestJump(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.Bird = Bird{Y: 123, Vel: 9.5}

	next := Jump(s, cfg)

	if next.Bird.Vel != cfg.JumpImpulse {
		t.Errorf("velocity = %f, expected %f", next.Bird.Vel, cfg.JumpImpulse)
	}
	if next.Bird.Y != 123 {
		t.Errorf("position must be untouched, got %f", next.Bird.Y)
	}
	if next.Score != s.Score || next.Lives != s.Lives || next.Time != s.Time {
		t.Error("jump must only replace the velocity")
	}
}

func TestSpawn(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	p := Pipe{X: cfg.ViewportW, GapY: 200, GapHeight: 120}
	next := Spawn(s, p)

	if !next.Started {
		t.Error("first spawn must mark the game as started")
	}
	if len(next.Pipes) != 1 || next.Pipes[0] != p {
		t.Errorf("pipes = %+v, expected the spawned pipe", next.Pipes)
	}
	if len(s.Pipes) != 0 {
		t.Error("spawn must not write through to the previous snapshot")
	}
}

func TestTickDeterminism(t *testing.T) {
	cfg := DefaultConfig()

	run := func() []State {
		s := NewState(cfg)
		s = Spawn(s, Pipe{X: cfg.ViewportW, GapY: 180, GapHeight: 110})
		s = Spawn(s, Pipe{X: cfg.ViewportW + 250, GapY: 240, GapHeight: 100})

		states := make([]State, 0, 400)
		for i := 0; i < 400 && !s.Ended; i++ {
			if i%18 == 0 {
				s = Jump(s, cfg)
			}
			s = Tick(s, cfg)
			states = append(states, s)
		}
		return states
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical event sequences must produce identical state sequences")
	}
}

func TestRunInvariants(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s = Spawn(s, Pipe{X: cfg.ViewportW, GapY: 200, GapHeight: 120})

	prev := s
	for i := 0; i < 1000; i++ {
		if i%25 == 0 {
			s = Jump(s, cfg)
		}
		s = Tick(s, cfg)

		if s.Lives > prev.Lives {
			t.Fatalf("tick %d: lives increased %d -> %d", i, prev.Lives, s.Lives)
		}
		if s.Score < prev.Score {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev.Score, s.Score)
		}
		if prev.Ended && !reflect.DeepEqual(s, prev) {
			t.Fatalf("tick %d: state changed after game end", i)
		}
		prev = s
	}
}
