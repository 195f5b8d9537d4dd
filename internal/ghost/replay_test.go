package ghost

import "testing"

func TestReplayWalksPathOnce(t *testing.T) {
	path := []float64{200, 193.4, 187.2}
	r := New(path)

	if r.Len() != len(path) {
		t.Fatalf("Len() = %d, expected %d", r.Len(), len(path))
	}

	for i, want := range path {
		y, ok := r.Next()
		if !ok {
			t.Fatalf("Next() exhausted at tick %d", i)
		}
		if y != want {
			t.Errorf("tick %d: y = %f, expected %f", i, y, want)
		}
	}

	// Exhaustion is permanent.
	for i := 0; i < 3; i++ {
		if y, ok := r.Next(); ok || y != 0 {
			t.Fatalf("Next() after exhaustion = (%f, %v), expected (0, false)", y, ok)
		}
	}
}

func TestReplayEmpty(t *testing.T) {
	r := New(nil)
	if r.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", r.Len())
	}
	if y, ok := r.Next(); ok || y != 0 {
		t.Errorf("Next() on empty replay = (%f, %v), expected (0, false)", y, ok)
	}
}

func TestReplayCopiesInput(t *testing.T) {
	path := []float64{100, 110}
	r := New(path)
	path[0] = 999

	if y, _ := r.Next(); y != 100 {
		t.Errorf("y = %f, expected 100: the replay must not alias the caller's slice", y)
	}
}
