package math

// Lerp interpolates between a and b by t without clamping.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b, clamped to [0, 1].
// A degenerate range yields 0.
func InverseLerp(a, b, value float32) float32 {
	if a == b {
		return 0
	}
	t := (value - a) / (b - a)
	return Clamp(t, 0, 1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
