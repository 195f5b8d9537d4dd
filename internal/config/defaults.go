package config

import (
	_ "embed"
)

//go:embed defaults/birddash.yaml
var defaultBirddashYAML []byte

// DefaultBirddashConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultBirddashConfig() BirddashConfig {
	return BirddashConfig{
		Viewport: ViewportConfig{Width: 600, Height: 400},
		Bird:     BirdConfig{Width: 42, Height: 30, XFraction: 0.25},
		Physics:  PhysicsConfig{Gravity: 0.4, JumpImpulse: -7, TickMs: 16},
		Pipes:    PipesConfig{Width: 50, Speed: 3},
		Rules:    RulesConfig{Lives: 3, Seed: 1234},
	}
}
