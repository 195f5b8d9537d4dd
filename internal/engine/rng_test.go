package engine

import "testing"

func TestHashKnownValues(t *testing.T) {
	// (1103515245*seed + 12345) mod 2^31
	if got := Hash(0); got != 12345 {
		t.Errorf("Hash(0) = %d, expected 12345", got)
	}
	if got := Hash(1); got != 1103527590 {
		t.Errorf("Hash(1) = %d, expected 1103527590", got)
	}
}

func TestHashRange(t *testing.T) {
	seeds := []int64{-1e9, -1234, -1, 0, 1, 1234, 1e12}
	for _, s := range seeds {
		h := Hash(s)
		if h < 0 || h >= lcgMod {
			t.Errorf("Hash(%d) = %d, out of [0, 2^31)", s, h)
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	for _, s := range []int64{0, 42, 1234, -77} {
		if Hash(s) != Hash(s) {
			t.Errorf("Hash(%d) is not stable", s)
		}
	}
}

func TestScaleEndpoints(t *testing.T) {
	if got := Scale(0); got != -1 {
		t.Errorf("Scale(0) = %f, expected -1", got)
	}
	if got := Scale(lcgMod - 1); got != 1 {
		t.Errorf("Scale(2^31-1) = %f, expected 1", got)
	}
}

func TestScaleRange(t *testing.T) {
	for _, s := range []int64{0, 1, 99, 1234, 987654} {
		v := Scale(Hash(s))
		if v < -1 || v > 1 {
			t.Errorf("Scale(Hash(%d)) = %f, out of [-1, 1]", s, v)
		}
	}
}

func TestKnockbackBounds(t *testing.T) {
	vels := []float64{-12.5, -7, -0.1, 0, 0.4, 2.4, 9.9}
	for _, vel := range vels {
		k := knockback(1234, vel, KnockMin, KnockMax)
		if k < KnockMin || k > KnockMax {
			t.Errorf("knockback(vel=%f) = %f, out of [%f, %f]", vel, k, KnockMin, KnockMax)
		}
	}
}

func TestKnockbackReproducible(t *testing.T) {
	// Same seed and velocity always bounce the same way.
	a := knockback(1234, 2.4, KnockMin, KnockMax)
	b := knockback(1234, 2.4, KnockMin, KnockMax)
	if a != b {
		t.Errorf("knockback not reproducible: %f vs %f", a, b)
	}
}
