package engine

// Knockback ranges in velocity units. A strike on a pipe's top segment
// (or the viewport's top edge) bounces the bird downward with a delta in
// [KnockMin, KnockMax]; a bottom strike bounces it upward with the
// negated range.
const (
	KnockMin = 5.0
	KnockMax = 10.0
)

// PipeResult is the outcome of evaluating one pipe for one tick.
// It is consumed immediately by Aggregate and never persisted.
type PipeResult struct {
	Pipe       Pipe    // The pipe after evaluation and horizontal advance
	Hit        bool    // Collision fired this tick
	ScoreDelta int     // 1 if the pipe was passed this tick, else 0
	VelDelta   float64 // Knockback applied to the bird's velocity
}

// EvaluatePipe runs the per-pipe, per-tick evaluation. The bird passed in
// must already be gravity-integrated for this tick (reference position and
// velocity, see Tick).
//
// The vertical test is phrased as "bird outside the gap" comparisons so a
// pipe with NaN gap fields fails every test and stays inert: it cannot
// collide, cannot score, and just advances leftward.
func EvaluatePipe(p Pipe, bird Bird, cfg Config) PipeResult {
	birdX := cfg.BirdX()

	// Horizontal extents overlap.
	overlap := birdX < p.X+cfg.PipeWidth && p.X < birdX+cfg.BirdW

	// Strictly inside the gap means no contact; touching either lip counts.
	gapLo := p.GapY - p.GapHeight/2
	gapHi := p.GapY + p.GapHeight/2
	outsideGap := bird.Y <= gapLo || bird.Y >= gapHi

	hit := overlap && outsideGap && !p.Collided
	collided := p.Collided || hit

	var velDelta float64
	if hit {
		if bird.Y < p.GapY {
			// Struck the top segment: bounce downward.
			velDelta = knockback(cfg.Seed, bird.Vel, KnockMin, KnockMax)
		} else {
			// Struck the bottom segment: bounce upward.
			velDelta = -knockback(cfg.Seed, bird.Vel, KnockMin, KnockMax)
		}
	}

	// A pass is one-shot and never coincides with a collision: a pipe that
	// collides this tick must not score this tick.
	scoreDelta := 0
	passed := p.Passed
	if !p.Passed && !collided && p.TrailingEdge(cfg.PipeWidth) < birdX {
		passed = true
		scoreDelta = 1
	}

	next := p
	next.X = p.X - cfg.PipeSpeed
	next.Collided = collided
	next.Passed = passed

	return PipeResult{
		Pipe:       next,
		Hit:        hit,
		ScoreDelta: scoreDelta,
		VelDelta:   velDelta,
	}
}
