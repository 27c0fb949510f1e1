package library

import (
	"math"
	"time"
)

// Clock supplies the current instant. The engine never calls time.Now
// directly so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the real wall clock.
var SystemClock Clock = systemClock{}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DaysBetween returns the absolute difference between two instants in days,
// rounded up. A return 30 minutes past the due date counts as 1 overdue day;
// every overdue-day computation in the engine goes through this function so
// fines scale consistently.
func DaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// AddDays shifts t forward by n calendar days. No timezone normalization is
// applied beyond plain calendar arithmetic.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsPast reports whether t is strictly before now.
func IsPast(t, now time.Time) bool {
	return now.After(t)
}
