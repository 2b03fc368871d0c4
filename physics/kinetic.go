package physics

import "time"

// Millis converts a duration to fractional milliseconds, the unit every rate in Tuning is expressed in
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Damp applies first-order velocity damping over dtMs
func Damp(v, damping, dtMs float64) float64 {
	return v * (1 - damping*dtMs)
}

// Clamp limits v to [-limit, limit]
func Clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// EaseToward moves v toward target by rate*dtMs of the remaining gap
// Frame-delta scaled lag, only an approximation of continuous decay, valid because dt is clamped
func EaseToward(v, target, rate, dtMs float64) float64 {
	return v + (target-v)*rate*dtMs
}
