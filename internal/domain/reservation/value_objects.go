package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-in date must be before check-out date")
	ErrStayInPast        = errors.New("check-in date cannot be in the past")
)

// StayPeriod is a half-open calendar date range [checkIn, checkOut).
// The check-out date itself is not occupied, so back-to-back stays on the
// same room are allowed.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights is the number of calendar days between check-in and check-out.
func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps uses the strict half-open predicate: a stay ending on the day
// another begins does not conflict.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) StartsBefore(today time.Time) bool {
	return p.checkIn.Before(truncateToDate(today))
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s, %s)", p.checkIn.Format(time.DateOnly), p.checkOut.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
