package utils

import "math"

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampMagnitude limits |x| to limit, keeping the sign. A non-positive limit disables the clamp.
func ClampMagnitude(x, limit float64) float64 {
	if limit <= 0 {
		return x
	}
	return Clamp(x, -limit, limit)
}

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}
