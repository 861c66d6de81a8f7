package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	base
}

var _ Training = (*Running)(nil)

// NewRunning создаёт тренировку «бег».
func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(KindRunning, action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

// SpentCalories возвращает количество потраченных калорий.
func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / MInKm * r.duration * MinInH
}
