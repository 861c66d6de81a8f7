// Package training считает дистанцию, среднюю скорость и потраченные калории
// для бега, спортивной ходьбы и плавания.
package training

const (
	LenStep         = 0.65 // длина шага в метрах
	SwimmingLenStep = 1.38 // длина гребка в метрах
	MInKm           = 1000 // метров в километре
	MinInH          = 60   // минут в часе
	KmhInMsec       = 0.278
	CmInM           = 100 // сантиметров в метре
)

// Training is a single finished workout.
// Every implementation must provide its own calorie formula.
type Training interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// base хранит общие для всех тренировок данные.
// base сам по себе не реализует Training: у него нет формулы калорий.
type base struct {
	kind     Kind
	action   int     // количество шагов или гребков
	duration float64 // длительность в часах
	weight   float64 // вес в килограммах
	lenStep  float64
}

func newBase(kind Kind, action int, duration, weight, lenStep float64) (base, error) {
	if err := validateAction(action); err != nil {
		return base{}, err
	}
	if err := validatePositive("duration", duration); err != nil {
		return base{}, err
	}
	if err := validatePositive("weight", weight); err != nil {
		return base{}, err
	}
	return base{
		kind:     kind,
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}, nil
}

func (b base) Kind() Kind {
	return b.kind
}

func (b base) Action() int {
	return b.action
}

func (b base) Duration() float64 {
	return b.duration
}

func (b base) Weight() float64 {
	return b.weight
}

// Distance возвращает дистанцию в километрах, посчитанную по шагам.
func (b base) Distance() float64 {
	return float64(b.action) * b.lenStep / MInKm
}

// MeanSpeed возвращает среднюю скорость в км/ч.
func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

// Info собирает итоговое сообщение о тренировке.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().Label(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
