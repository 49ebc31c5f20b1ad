/*
allocate.go - Content-to-weekday allocation and the monthly quota rule

PURPOSE:
  The orchestrating engine. For a (project, target month) pair it resolves
  the launch window, enumerates the month's weekdays, truncates them per the
  window classification, and zips the content items onto the remaining days
  in their given order.

DETERMINISM:
  Allocate is a pure function of (project.CreatedAt, targetYear,
  targetMonth, items-as-given-sequence). No clock, no randomness, no writes.
  Safe to call concurrently from any number of request handlers.

TRUNCATION RULE:
  LaunchMonth  - keep only weekdays on or after the launch date
  BeforeLaunch - no days at all (callers normally skip allocation here)
  PostLaunch   - the full month's weekdays

QUOTA RULE:
  RequiredCount answers "how many items should exist this month",
  independent of how many actually do. Post-launch months use the flat
  constant 20 rather than the month's true weekday count. Product has been
  asked to confirm that constant; until then it is preserved as-is.

OVERFLOW / UNDERFLOW:
  More items than days is not an error: the surplus items get no date.
  Fewer items than days leaves the surplus days unmentioned; no placeholder
  entries are produced.
*/
package schedule

import (
	"time"

	"github.com/studiopulse/opsboard/calendar"
)

// postLaunchMonthlyQuota is the contractual post count for every month
// after the launch month. Flat business rule, not derived from the
// calendar.
const postLaunchMonthlyQuota = 20

// Allocate maps items onto the target month's (possibly truncated)
// weekdays. The i-th item gets the i-th day; items beyond the last day get
// no date. Output order equals input order.
func Allocate(project Project, items []ContentItem, targetYear int, targetMonth time.Month) AllocationResult {
	window := ResolveWindow(project, targetYear, targetMonth)
	days := scheduleDays(window, targetYear, targetMonth)

	entries := make([]Assignment, len(items))
	for i, item := range items {
		entries[i] = Assignment{Item: item}
		if i < len(days) {
			entries[i].Date = days[i]
		}
	}
	return AllocationResult{Entries: entries}
}

// RequiredCount returns the number of items the project owes for the given
// month: zero before launch, the truncated weekday count in the launch
// month, and the flat quota afterwards.
func RequiredCount(project Project, year int, month time.Month) int {
	window := ResolveWindow(project, year, month)
	switch window.Classification {
	case BeforeLaunch:
		return 0
	case LaunchMonth:
		return len(scheduleDays(window, year, month))
	default:
		return postLaunchMonthlyQuota
	}
}

// scheduleDays returns the weekdays of the month that may receive content,
// truncated per the window classification.
func scheduleDays(window LaunchWindow, year int, month time.Month) []calendar.Date {
	if window.Classification == BeforeLaunch {
		return nil
	}

	days := calendar.WeekdaysInMonth(year, month)
	if window.Classification != LaunchMonth {
		return days
	}

	kept := days[:0:0]
	for _, d := range days {
		if !d.Before(window.LaunchDate) {
			kept = append(kept, d)
		}
	}
	return kept
}
