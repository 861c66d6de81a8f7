package random

// Int returns random integer in [from, to)
func Int(from, to int) int {
	if to <= from {
		return from
	}
	return rnd.Intn(to-from) + from
}

// Float returns random float in [from, to)
func Float(from, to float64) float64 {
	if to <= from {
		return from
	}
	return from + rnd.Float64()*(to-from)
}
