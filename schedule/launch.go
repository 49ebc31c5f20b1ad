/*
launch.go - Launch-date derivation and month classification

PURPOSE:
  Turns a project's creation instant into its launch date and classifies a
  target (year, month) relative to that launch.

LAUNCH RULE:
  Launch date = creation date + 2 calendar days (not business days). This is
  a flat domain constant: the site goes live two days after the project is
  created. It is not configurable per project.

CLASSIFICATION:
  The three-way split privileges the launch month as its own case because
  that month needs weekday truncation while later months do not:
    LaunchMonth  - target equals the launch date's year/month
    BeforeLaunch - target precedes the launch month
    PostLaunch   - target follows the launch month
*/
package schedule

import (
	"time"

	"github.com/studiopulse/opsboard/calendar"
)

// launchOffsetDays is the gap between project creation and go-live.
const launchOffsetDays = 2

// WindowClass classifies a target month relative to a project's launch.
type WindowClass int

const (
	BeforeLaunch WindowClass = iota
	LaunchMonth
	PostLaunch
)

func (c WindowClass) String() string {
	switch c {
	case BeforeLaunch:
		return "before-launch"
	case LaunchMonth:
		return "launch-month"
	default:
		return "post-launch"
	}
}

// LaunchWindow is the derived launch date plus its classification for one
// (project, target month) pair. Computed fresh on every request.
type LaunchWindow struct {
	LaunchDate     calendar.Date
	Classification WindowClass
}

// DeriveLaunchDate returns the civil date two calendar days after the
// project's creation instant.
func DeriveLaunchDate(createdAt time.Time) calendar.Date {
	return calendar.DateOf(createdAt).AddDays(launchOffsetDays)
}

// Classify places (targetYear, targetMonth) relative to the launch date.
func Classify(launch calendar.Date, targetYear int, targetMonth time.Month) WindowClass {
	if launch.SameMonth(targetYear, targetMonth) {
		return LaunchMonth
	}
	if launch.Year() > targetYear ||
		(launch.Year() == targetYear && launch.Month() > targetMonth) {
		return BeforeLaunch
	}
	return PostLaunch
}

// ResolveWindow derives the launch date and classification in one call.
func ResolveWindow(project Project, targetYear int, targetMonth time.Month) LaunchWindow {
	launch := DeriveLaunchDate(project.CreatedAt)
	return LaunchWindow{
		LaunchDate:     launch,
		Classification: Classify(launch, targetYear, targetMonth),
	}
}
