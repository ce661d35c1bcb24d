package slot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("start time must be before end time")

// Period is a half-open interval [start, end) in UTC.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidRange
	}

	return Period{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps reports whether two half-open intervals share any instant.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

func (p Period) Contains(other Period) bool {
	return !other.start.Before(p.start) && !other.end.After(p.end)
}

func (p Period) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
