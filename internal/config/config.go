// Package config provides YAML-based configuration loading for the
// birddash platform.
package config

import (
	"github.com/birddash/birddash/internal/engine"
)

// BirddashConfig contains all tunable world parameters. The embedded
// defaults are the canonical constants; a user config may override them.
type BirddashConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Bird     BirdConfig     `yaml:"bird"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Pipes    PipesConfig    `yaml:"pipes"`
	Rules    RulesConfig    `yaml:"rules"`
}

// ViewportConfig defines the world dimensions in viewport units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the bird sprite and its fixed horizontal anchor.
type BirdConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	XFraction float64 `yaml:"x_fraction"`
}

// PhysicsConfig defines the per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	TickMs      float64 `yaml:"tick_ms"`
}

// PipesConfig defines obstacle geometry and movement.
type PipesConfig struct {
	Width float64 `yaml:"width"`
	Speed float64 `yaml:"speed"`
}

// RulesConfig defines session rules and the knockback seed.
type RulesConfig struct {
	Lives int   `yaml:"lives"`
	Seed  int64 `yaml:"seed"`
}

// Engine maps the loaded configuration onto the engine's world parameters.
func (c BirddashConfig) Engine() engine.Config {
	return engine.Config{
		ViewportW:   c.Viewport.Width,
		ViewportH:   c.Viewport.Height,
		BirdW:       c.Bird.Width,
		BirdH:       c.Bird.Height,
		BirdXFrac:   c.Bird.XFraction,
		Gravity:     c.Physics.Gravity,
		JumpImpulse: c.Physics.JumpImpulse,
		TickMs:      c.Physics.TickMs,
		PipeWidth:   c.Pipes.Width,
		PipeSpeed:   c.Pipes.Speed,
		Seed:        c.Rules.Seed,
		StartLives:  c.Rules.Lives,
	}
}
