/*
calendar.go - Civil-date value type and business-day arithmetic

PURPOSE:
  Pure date math for the scheduling engine. Knows nothing about projects,
  posts, or clinics - only about calendars and weekdays.

DESIGN:
  Date is an immutable value type wrapping time.Time, normalized to
  midnight UTC at day granularity. All operations return new values.

WEEKDAY RULE:
  Monday-Friday are weekdays. Saturday/Sunday are not. There is no holiday
  awareness anywhere in this system.

PRECONDITIONS:
  Month arguments are expected in the 1-12 range. The functions here do not
  validate them; callers (the API layer parses and validates month labels
  before reaching this package) must pass valid values.

SEE ALSO:
  - monthlabel.go: "MM-YYYY" label parsing and formatting
  - schedule/allocate.go: The main consumer of these functions
*/
package calendar

import (
	"time"
)

// =============================================================================
// DATE - Civil date value type
// =============================================================================

// Date is a civil date: year, month, day. No time-of-day, no timezone.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its civil date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

// SameMonth reports whether the date falls in the given year and month.
func (d Date) SameMonth(year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}

// ISO returns the date formatted as YYYY-MM-DD.
func (d Date) ISO() string { return d.t.Format("2006-01-02") }

func (d Date) String() string { return d.ISO() }

// =============================================================================
// BUSINESS-DAY MATH
// =============================================================================

// IsWeekday returns true for Monday through Friday.
func (d Date) IsWeekday() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WeekdaysInMonth returns every weekday of the month in ascending order,
// from the 1st through the last day of the month.
func WeekdaysInMonth(year int, month time.Month) []Date {
	var days []Date
	current := NewDate(year, month, 1)
	for current.Month() == month {
		if current.IsWeekday() {
			days = append(days, current)
		}
		current = current.AddDays(1)
	}
	return days
}

// AddBusinessDays walks forward from start one calendar day at a time,
// counting only weekdays, and returns the date of the n-th weekday passed.
// n = 0 returns start unchanged.
func AddBusinessDays(start Date, n int) Date {
	current := start
	for counted := 0; counted < n; {
		current = current.AddDays(1)
		if current.IsWeekday() {
			counted++
		}
	}
	return current
}

// EndOfMonth returns the last day of the given month.
func EndOfMonth(year int, month time.Month) Date {
	return NewDate(year, month+1, 1).AddDays(-1)
}
