package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"contained", NewRectF(0, 0, 10, 10), NewRectF(2, 2, 3, 3), true},
		{"disjoint horizontal", NewRectF(0, 0, 10, 10), NewRectF(20, 0, 10, 10), false},
		{"disjoint vertical", NewRectF(0, 0, 10, 10), NewRectF(0, 20, 10, 10), false},
		{"edge touching", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"corner touching", NewRectF(0, 0, 10, 10), NewRectF(10, 10, 10, 10), false},
		{"fractional overlap", NewRectF(0, 0, 10.5, 10.5), NewRectF(10.2, 10.2, 5, 5), true},
		{"nan position", NewRectF(math.NaN(), 0, 10, 10), NewRectF(0, 0, 10, 10), false},
		{"nan extent", NewRectF(0, 0, 10, 10), NewRectF(0, 0, math.NaN(), 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(10, 10, 5, 5)

	if !r.Contains(10, 10) {
		t.Error("top-left corner must be inside")
	}
	if r.Contains(15, 15) {
		t.Error("bottom-right corner is exclusive")
	}
	if !r.Contains(12.5, 12.5) {
		t.Error("center must be inside")
	}
	if r.Contains(9.9, 12) {
		t.Error("point left of the rectangle must be outside")
	}
}

func TestRectFCenter(t *testing.T) {
	cx, cy := NewRectF(0, 0, 10, 20).Center()
	if cx != 5 || cy != 10 {
		t.Errorf("Center() = (%f, %f), expected (5, 10)", cx, cy)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, expected 10", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
}
