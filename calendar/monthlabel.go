/*
monthlabel.go - "MM-YYYY" month label handling

PURPOSE:
  Content items and schedule requests carry their target month as a
  human-chosen "MM-YYYY" label (e.g. "02-2026"). This file parses and
  formats those labels.

VALIDATION:
  ParseMonthLabel rejects malformed labels instead of letting nonsensical
  month/year numbers flow into the calendar math. Callers decide whether to
  surface the error (HTTP 400) or substitute a default label.
*/
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadMonthLabel is returned for labels that are not "MM-YYYY" with a
// month in the 1-12 range.
var ErrBadMonthLabel = errors.New("malformed month label")

// ParseMonthLabel parses a "MM-YYYY" label into a month and year.
func ParseMonthLabel(label string) (time.Month, int, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadMonthLabel, label)
	}

	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadMonthLabel, label)
	}

	y, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 || y < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadMonthLabel, label)
	}

	return time.Month(m), y, nil
}

// FormatMonthLabel renders a month and year as "MM-YYYY".
func FormatMonthLabel(month time.Month, year int) string {
	return fmt.Sprintf("%02d-%04d", int(month), year)
}
