package random

// WorkoutCodes lists workout codes understood by the sensor package reader.
var WorkoutCodes = []string{"SWM", "RUN", "WLK"}

// WorkoutCode returns one of the known workout codes
func WorkoutCode() string {
	return WorkoutCodes[rnd.Intn(len(WorkoutCodes))]
}

// UnknownWorkoutCode returns a code which is guaranteed not to be a known one
func UnknownWorkoutCode() string {
	for {
		code := UpperString(3, 8)
		known := false
		for _, c := range WorkoutCodes {
			if c == code {
				known = true
				break
			}
		}
		if !known {
			return code
		}
	}
}

// WorkoutData returns plausible positional sensor data for given workout code.
// Unknown codes get running data.
func WorkoutData(code string) []float64 {
	action := float64(Int(1000, 20000))
	duration := Float(0.25, 3)
	weight := float64(Int(50, 140))

	switch code {
	case "SWM":
		return []float64{action, duration, weight, float64(Int(10, 50)), float64(Int(1, 60))}
	case "WLK":
		return []float64{action, duration, weight, float64(Int(150, 220))}
	default:
		return []float64{action, duration, weight}
	}
}
