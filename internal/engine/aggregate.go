package engine

// Aggregate folds per-pipe results into tick-level totals.
// An empty slice yields (false, 0, 0).
func Aggregate(results []PipeResult) (hit bool, scoreDelta int, velDelta float64) {
	for _, r := range results {
		hit = hit || r.Hit
		scoreDelta += r.ScoreDelta
		velDelta += r.VelDelta
	}
	return hit, scoreDelta, velDelta
}
