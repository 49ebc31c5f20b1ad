/*
display.go - Human-facing labels derived from an allocation

PURPOSE:
  Consumers render an allocation as a list of cards. This file derives the
  card text from each Assignment: a long date label, compact weekday/day
  fields, and a short title from the caption's first line.
*/
package schedule

import (
	"fmt"
	"strings"
)

const (
	// NoDateLabel is shown for items that overflowed the month's weekdays.
	NoDateLabel = "No date"

	// shortTitleBudget caps the derived title length in characters.
	shortTitleBudget = 40
)

// DateLabel renders an assigned date as e.g. "13 February". Unassigned
// entries get the NoDateLabel sentinel.
func DateLabel(a Assignment) string {
	if !a.Assigned() {
		return NoDateLabel
	}
	return fmt.Sprintf("%d %s", a.Date.Day(), a.Date.Month())
}

// CompactDay renders the two-letter weekday and day number used by the
// dense calendar view, e.g. ("Fr", "13"). Empty strings when unassigned.
func CompactDay(a Assignment) (weekday, day string) {
	if !a.Assigned() {
		return "", ""
	}
	return a.Date.Weekday().String()[:2], fmt.Sprintf("%d", a.Date.Day())
}

// ISODate renders the assigned date as YYYY-MM-DD, or "" when unassigned.
func ISODate(a Assignment) string {
	if !a.Assigned() {
		return ""
	}
	return a.Date.ISO()
}

// ShortTitle derives a card title from the caption: first line, truncated
// to the character budget, with a positional "Post N" fallback when the
// caption is empty. position is 1-based.
func ShortTitle(item ContentItem, position int) string {
	caption := strings.TrimSpace(item.Caption)
	if caption == "" {
		return fmt.Sprintf("Post %d", position)
	}

	line := caption
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}

	runes := []rune(line)
	if len(runes) > shortTitleBudget {
		line = string(runes[:shortTitleBudget])
	}
	return line
}
