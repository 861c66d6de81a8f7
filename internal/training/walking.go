package training

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walk measured in steps. Height takes part in the calorie formula.
type SportsWalking struct {
	base
	height float64 // рост в сантиметрах
}

var _ Training = (*SportsWalking)(nil)

// NewSportsWalking создаёт тренировку «спортивная ходьба».
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	b, err := newBase(KindWalking, action, duration, weight, LenStep)
	if err != nil {
		return nil, err
	}
	if err = validatePositive("height", height); err != nil {
		return nil, err
	}
	return &SportsWalking{base: b, height: height}, nil
}

func (w *SportsWalking) Height() float64 {
	return w.height
}

// SpentCalories возвращает количество потраченных калорий.
//
// Квадрат скорости делится на рост нацело (с округлением вниз), и только потом на CmInM.
// При обычных значениях роста слагаемое со скоростью обнуляется.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.weight +
		(floorDiv(speed*speed, w.height)/CmInM)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * MinInH
}

// floorDiv divides x by y rounding toward negative infinity the way Python's float
// floor division does: the quotient is derived from fmod and then snapped to an integer,
// so it can differ from math.Floor(x/y) when x/y rounds up across an integer boundary.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
