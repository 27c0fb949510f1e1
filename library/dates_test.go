package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetweenRoundsPartialDaysUp(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// 30 minutes late counts as a full overdue day.
	assert.Equal(t, 1, DaysBetween(base, base.Add(30*time.Minute)))
	assert.Equal(t, 1, DaysBetween(base, base.Add(24*time.Hour)))
	assert.Equal(t, 2, DaysBetween(base, base.Add(24*time.Hour+time.Minute)))
	assert.Equal(t, 0, DaysBetween(base, base))
}

func TestDaysBetweenIsSymmetric(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(72 * time.Hour)

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 3, DaysBetween(b, a))
}

func TestAddDays(t *testing.T) {
	base := time.Date(2024, 2, 27, 9, 30, 0, 0, time.UTC)

	got := AddDays(base, 14)
	assert.Equal(t, time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC), got)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, 2, 29, 9, 30, 0, 0, time.UTC), AddDays(base, 2))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsPast(now.Add(-time.Second), now))
	assert.False(t, IsPast(now, now))
	assert.False(t, IsPast(now.Add(time.Second), now))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clk := FixedClock{T: at}

	assert.Equal(t, at, clk.Now())
	assert.Equal(t, at, clk.Now())
}
