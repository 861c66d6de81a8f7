package training

import (
	"fmt"
	"strconv"
)

// InfoMessage is the summary of a computed workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // часы
	Distance     float64 // км
	Speed        float64 // км/ч
	Calories     float64 // ккал
}

// String renders the message as a single line without a trailing newline.
func (m InfoMessage) String() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %s ч.; Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, strconv.FormatFloat(m.Duration, 'f', -1, 64), m.Distance, m.Speed, m.Calories)
}
