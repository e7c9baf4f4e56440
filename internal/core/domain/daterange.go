package domain

import (
	"errors"
	"time"
)

// ErrDegenerateRange indicates a stay whose check-out is not strictly after its check-in.
var ErrDegenerateRange = errors.New("check-out date must be after check-in date")

// DateRange is a half-open interval [CheckIn, CheckOut) at day granularity.
// Both bounds are normalized to UTC midnight.
type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewDateRange builds a range from a check-in date and a number of nights.
func NewDateRange(checkIn time.Time, nights int) DateRange {
	start := DateOnly(checkIn)
	return DateRange{
		CheckIn:  start,
		CheckOut: start.AddDate(0, 0, nights),
	}
}

// DateOnly truncates a timestamp to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether either bound is missing. A zero range carries no
// constraint in conflict checks; callers decide whether to surface it.
func (r DateRange) IsZero() bool {
	return r.CheckIn.IsZero() || r.CheckOut.IsZero()
}

// Validate checks that the range is non-degenerate.
func (r DateRange) Validate() error {
	if r.IsZero() {
		return errors.New("check-in and check-out dates are required")
	}
	if !r.CheckOut.After(r.CheckIn) {
		return ErrDegenerateRange
	}
	return nil
}

// Overlaps reports whether two half-open ranges intersect:
// [s1,e1) ∩ [s2,e2) ≠ ∅ iff s1 < e2 && e1 > s2.
// A zero range never overlaps anything.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Contains reports whether the given day falls inside the half-open range.
func (r DateRange) Contains(day time.Time) bool {
	if r.IsZero() {
		return false
	}
	d := DateOnly(day)
	return !r.CheckIn.After(d) && r.CheckOut.After(d)
}

// EndedBy reports whether the range has lapsed as of the given day.
func (r DateRange) EndedBy(day time.Time) bool {
	if r.IsZero() {
		return false
	}
	return !r.CheckOut.After(DateOnly(day))
}

// Nights returns the length of the range in nights.
func (r DateRange) Nights() int {
	if r.IsZero() {
		return 0
	}
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
