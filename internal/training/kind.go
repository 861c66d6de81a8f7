package training

// Kind is a workout code as it comes from the sensor package.
type Kind string

const (
	KindSwimming Kind = "SWM"
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
)

var kindLabels = map[Kind]string{
	KindSwimming: "Swimming",
	KindRunning:  "Running",
	KindWalking:  "SportsWalking",
}

// Label возвращает название тренировки для итогового сообщения.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Valid reports whether k is one of the known workout codes.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}
