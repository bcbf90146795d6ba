package transaction

import (
	"time"
)

// Date is a local calendar date in ISO form (YYYY-MM-DD). The string
// representation sorts chronologically, so range filters compare dates
// lexicographically and month filters match on the YYYY-MM prefix.
type Date string

// ParseDate validates s as a calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", ErrInvalidDate
	}

	return Date(s), nil
}

// NewDate builds a Date from a point in time, discarding the time of day.
func NewDate(t time.Time) Date {
	return Date(t.Format(time.DateOnly))
}

// Time converts the date back to a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	t, _ := time.Parse(time.DateOnly, string(d))
	return t
}

// Month returns the YYYY-MM prefix.
func (d Date) Month() string {
	if len(d) < 7 {
		return string(d)
	}

	return string(d)[:7]
}

// AddMonths advances the date by n calendar months. When the day of month
// does not exist in the target month the day is clamped to the last day of
// that month: Jan 31 + 1 month is Feb 28 (or 29), never a rollover into
// March. One installment per stated month, always.
func (d Date) AddMonths(n int) Date {
	t := d.Time()
	year, month, day := t.Date()

	m := int(month) - 1 + n
	year += m / 12
	m %= 12

	if m < 0 {
		m += 12
		year--
	}

	target := time.Month(m + 1)
	if last := daysInMonth(year, target); day > last {
		day = last
	}

	return NewDate(time.Date(year, target, day, 0, 0, 0, 0, time.UTC))
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
