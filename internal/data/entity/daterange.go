package entity

import "time"

// DateFormat is the wire format for all dates (ISO-8601, date only).
const DateFormat = "2006-01-02"

// DateRange is a stay interval. Dates are normalized to UTC midnight,
// so comparisons are timezone-naive calendar comparisons.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange builds a range from two dates. Fails with ErrInvalidRange
// when checkOut is not after checkIn.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	ci := ToDay(checkIn)
	co := ToDay(checkOut)

	if !co.After(ci) {
		return DateRange{}, ErrInvalidRange
	}

	return DateRange{CheckIn: ci, CheckOut: co}, nil
}

// ParseDateRange builds a range from two ISO-8601 date strings.
// Malformed dates are reported as ErrInvalidRange.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	ci, err := time.Parse(DateFormat, checkIn)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}

	co, err := time.Parse(DateFormat, checkOut)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}

	return NewDateRange(ci, co)
}

// Overlaps reports whether two ranges conflict. Boundaries are inclusive:
// a checkout on day N conflicts with a check-in on day N (no same-day
// turnover).
func (d DateRange) Overlaps(other DateRange) bool {
	return !d.CheckIn.After(other.CheckOut) && !other.CheckIn.After(d.CheckOut)
}

// Nights returns the number of nights in the range, rounding partial
// days up.
func (d DateRange) Nights() int {
	diff := d.CheckOut.Sub(d.CheckIn)
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// ToDay truncates a timestamp to its UTC midnight.
func ToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
