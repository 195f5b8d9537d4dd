// Package ghost replays a previously recorded bird path alongside a live
// session, on the same fixed-interval clock.
package ghost

// Replay walks a recorded position trace one tick at a time. It is not
// restartable: construct a fresh Replay per playback.
type Replay struct {
	path []float64
	pos  int
}

// New creates a replay over a recorded path. The slice is copied so the
// replay is unaffected by later writes to the recording.
func New(path []float64) *Replay {
	p := make([]float64, len(path))
	copy(p, path)
	return &Replay{path: p}
}

// Next returns the position for the current tick and advances. Once the
// recording is exhausted it returns (0, false) permanently; the consumer
// uses the absent marker to stop drawing this ghost.
func (r *Replay) Next() (float64, bool) {
	if r.pos >= len(r.path) {
		return 0, false
	}
	y := r.path[r.pos]
	r.pos++
	return y, true
}

// Len returns the total number of recorded ticks.
func (r *Replay) Len() int {
	return len(r.path)
}
