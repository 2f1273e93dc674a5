package colon

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
