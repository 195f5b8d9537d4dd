package engine

// Tick advances the game by one fixed time step. It is a total function:
// no input state produces an error, and a terminal state is absorbed
// unchanged.
func Tick(s State, cfg Config) State {
	if s.Ended {
		return s
	}

	// Gravity integration. The resulting bird is the reference fed to
	// collision evaluation; the final position is re-integrated below from
	// the pre-tick baseline once all velocity adjustments are known.
	vel := s.Bird.Vel + cfg.Gravity
	ref := Bird{Y: s.Bird.Y + vel, Vel: vel}

	// Evaluate every pipe, then retain only those whose trailing edge is
	// still right of the viewport's left bound.
	results := make([]PipeResult, 0, len(s.Pipes))
	kept := make([]Pipe, 0, len(s.Pipes))
	for _, p := range s.Pipes {
		r := EvaluatePipe(p, ref, cfg)
		results = append(results, r)
		if r.Pipe.TrailingEdge(cfg.PipeWidth) > 0 {
			kept = append(kept, r.Pipe)
		}
	}

	pipeHit, scoreDelta, pipeVelDelta := Aggregate(results)

	// Boundary collision is judged on the pre-tick position: a bird on or
	// past an edge is knocked back toward the interior.
	var boundaryDelta float64
	boundaryHit := false
	switch {
	case s.Bird.Y <= 0:
		boundaryHit = true
		boundaryDelta = knockback(cfg.Seed, ref.Vel, KnockMin, KnockMax)
	case s.Bird.Y >= cfg.ViewportH:
		boundaryHit = true
		boundaryDelta = -knockback(cfg.Seed, ref.Vel, KnockMin, KnockMax)
	}

	// At most one life is lost per tick, however many pipes collided.
	lives := s.Lives
	if pipeHit || boundaryHit {
		lives--
	}

	// Losing the last life ends the run; so does running out of obstacles
	// once the game has started (completion, not loss).
	ended := lives <= 0 || (s.Started && len(kept) == 0)

	finalVel := vel + pipeVelDelta + boundaryDelta

	return State{
		Bird:    Bird{Y: s.Bird.Y + finalVel, Vel: finalVel},
		Pipes:   kept,
		Score:   s.Score + scoreDelta,
		Lives:   lives,
		Ended:   ended,
		Started: s.Started,
		Time:    s.Time + cfg.TickMs,
	}
}
