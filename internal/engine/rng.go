package engine

// The knockback generator is a plain linear congruential step. It carries
// no internal state: the same input always hashes to the same output, so
// a given in-flight trajectory always produces the same bounce.
const (
	lcgMul = 1103515245
	lcgInc = 12345
	lcgMod = int64(1) << 31
)

// Hash advances the LCG once. The result is normalized into [0, 2^31).
func Hash(seed int64) int64 {
	h := (lcgMul*seed + lcgInc) % lcgMod
	if h < 0 {
		h += lcgMod
	}
	return h
}

// Scale remaps a hash value linearly into [-1, 1].
func Scale(h int64) float64 {
	return 2*float64(h)/float64(lcgMod-1) - 1
}

// knockback derives a reproducible bounce magnitude in [lo, hi] from the
// base seed and the bird's current velocity. Velocity is quantized to
// hundredths so tiny float noise does not change the hash input.
func knockback(seed int64, vel, lo, hi float64) float64 {
	r := Scale(Hash(seed + int64(vel*100)))
	return (hi+lo)/2 + (hi-lo)/2*r
}
