package slot

type Status string

const (
	StatusOpen   Status = "open"
	StatusHeld   Status = "held"
	StatusBooked Status = "booked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusHeld, StatusBooked:
		return true
	default:
		return false
	}
}
