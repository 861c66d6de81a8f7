package training

const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim. Speed comes from the pool length and the number of lengths,
// while Distance keeps the stroke based formula inherited from base.
type Swimming struct {
	base
	lengthPool float64 // длина бассейна в метрах
	countPool  int     // сколько раз переплыт бассейн
}

var _ Training = (*Swimming)(nil)

// NewSwimming создаёт тренировку «плавание».
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	b, err := newBase(KindSwimming, action, duration, weight, SwimmingLenStep)
	if err != nil {
		return nil, err
	}
	if err = validatePositive("length_pool", lengthPool); err != nil {
		return nil, err
	}
	if countPool < 0 {
		return nil, &InvalidInputError{Field: "count_pool", Value: float64(countPool), Reason: "must not be negative"}
	}
	return &Swimming{base: b, lengthPool: lengthPool, countPool: countPool}, nil
}

func (s *Swimming) LengthPool() float64 {
	return s.lengthPool
}

func (s *Swimming) CountPool() int {
	return s.countPool
}

// PoolDistance возвращает реально проплытую дистанцию в километрах.
// В итоговое сообщение она не попадает: там остаётся Distance, посчитанная по гребкам.
func (s *Swimming) PoolDistance() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm
}

// MeanSpeed возвращает среднюю скорость в км/ч по длине и количеству бассейнов.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MInKm / s.duration
}

// SpentCalories возвращает количество потраченных калорий.
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier *
		s.weight * s.duration
}
