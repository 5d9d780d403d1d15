package rental

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("period start must be before its end")

// Period is a half-open calendar-date interval [start, end). Both bounds are
// UTC midnights; day counts come from calendar-date differences, never from
// fractional elapsed time.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	s, e := DateOf(start), DateOf(end)
	if !s.Before(e) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: s, end: e}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Days() int {
	return daysBetween(p.start, p.end)
}

// Overlaps reports whether two half-open ranges conflict. Ranges touching
// only at a boundary do not.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

// DateOf truncates an instant to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from one date to the other. Both
// arguments are normalized to UTC midnight here, so callers may pass any
// instant.
func daysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
