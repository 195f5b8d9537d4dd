package engine

// Jump applies the instantaneous upward impulse: the bird's velocity is
// replaced by the configured jump impulse regardless of its current value
// or position. Everything else is unchanged.
func Jump(s State, cfg Config) State {
	if s.Ended {
		return s
	}
	s.Bird.Vel = cfg.JumpImpulse
	return s
}
