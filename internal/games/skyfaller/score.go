package skyfaller

import "math"

// ScoreAt returns the score for surviving elapsed seconds at rate points per
// second. Partial points are dropped.
func ScoreAt(elapsed, rate float64) int {
	if elapsed <= 0 || rate <= 0 {
		return 0
	}
	return int(math.Floor(elapsed * rate))
}
