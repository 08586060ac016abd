package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves v toward target by at most step and never overshoots.
func Approach(v, target, step float64) float64 {
	if v < target {
		v += step
		if v > target {
			v = target
		}
		return v
	}
	v -= step
	if v < target {
		v = target
	}
	return v
}
