package schedule_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopulse/opsboard/calendar"
	"github.com/studiopulse/opsboard/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func projectCreated(year int, month time.Month, day int) schedule.Project {
	return schedule.Project{
		ID:        "proj-1",
		ClinicID:  "clinic-1",
		Name:      "Dental Smiles",
		Status:    schedule.ProjectInProgress,
		CreatedAt: time.Date(year, month, day, 10, 30, 0, 0, time.UTC),
	}
}

func items(n int, targetMonth string) []schedule.ContentItem {
	out := make([]schedule.ContentItem, n)
	for i := range out {
		out[i] = schedule.ContentItem{
			ID:          fmt.Sprintf("post-%d", i+1),
			ProjectID:   "proj-1",
			Seq:         int64(i + 1),
			TargetMonth: targetMonth,
			Caption:     fmt.Sprintf("Caption %d", i+1),
			Status:      schedule.ItemReady,
		}
	}
	return out
}

// =============================================================================
// LAUNCH WINDOW TESTS
// =============================================================================

func TestDeriveLaunchDate_TwoCalendarDays(t *testing.T) {
	// GIVEN: A project created Wednesday 2026-02-11
	// THEN: Launch is Friday 2026-02-13 - calendar days, not business days

	p := projectCreated(2026, time.February, 11)
	launch := schedule.DeriveLaunchDate(p.CreatedAt)
	assert.Equal(t, calendar.NewDate(2026, time.February, 13), launch)
	assert.Equal(t, time.Friday, launch.Weekday())
}

func TestDeriveLaunchDate_CrossesMonthBoundary(t *testing.T) {
	// Created 2026-01-30, launch lands in February.
	launch := schedule.DeriveLaunchDate(time.Date(2026, time.January, 30, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, calendar.NewDate(2026, time.February, 1), launch)
}

func TestClassify_ThreeWaySplit(t *testing.T) {
	launch := calendar.NewDate(2026, time.March, 17)

	assert.Equal(t, schedule.LaunchMonth, schedule.Classify(launch, 2026, time.March))
	assert.Equal(t, schedule.BeforeLaunch, schedule.Classify(launch, 2026, time.February))
	assert.Equal(t, schedule.BeforeLaunch, schedule.Classify(launch, 2025, time.December))
	assert.Equal(t, schedule.PostLaunch, schedule.Classify(launch, 2026, time.April))
	assert.Equal(t, schedule.PostLaunch, schedule.Classify(launch, 2027, time.January))
}

// =============================================================================
// ALLOCATION TESTS
// =============================================================================

func TestAllocate_LaunchMonthTruncation(t *testing.T) {
	// GIVEN: Project created 2026-01-30, so launch is Sunday 2026-02-01
	// WHEN: Allocating for February 2026
	// THEN: No assigned day precedes the launch date

	p := projectCreated(2026, time.January, 30)
	result := schedule.Allocate(p, items(20, "02-2026"), 2026, time.February)

	launch := calendar.NewDate(2026, time.February, 1)
	for _, e := range result.Entries {
		if e.Assigned() {
			assert.False(t, e.Date.Before(launch), "assigned %s before launch", e.Date)
		}
	}
}

func TestAllocate_PostLaunchUsesFullMonth(t *testing.T) {
	// GIVEN: A project launched in January
	// WHEN: Allocating for March 2026 (22 weekdays)
	// THEN: Items map to the full month starting at the first weekday

	p := projectCreated(2026, time.January, 5)
	result := schedule.Allocate(p, items(3, "03-2026"), 2026, time.March)

	require.Len(t, result.Entries, 3)
	assert.Equal(t, calendar.NewDate(2026, time.March, 2), result.Entries[0].Date)
	assert.Equal(t, calendar.NewDate(2026, time.March, 3), result.Entries[1].Date)
	assert.Equal(t, calendar.NewDate(2026, time.March, 4), result.Entries[2].Date)
}

func TestAllocate_BeforeLaunchAssignsNothing(t *testing.T) {
	// GIVEN: A project launching in March
	// WHEN: Allocation is (wrongly) invoked for February
	// THEN: Every entry is present but unassigned

	p := projectCreated(2026, time.March, 15)
	result := schedule.Allocate(p, items(4, "02-2026"), 2026, time.February)

	require.Len(t, result.Entries, 4)
	for _, e := range result.Entries {
		assert.False(t, e.Assigned())
	}
}

func TestAllocate_OverflowGetsNoDate(t *testing.T) {
	// GIVEN: 5 items but only 3 truncated weekdays left in the launch month
	// THEN: Items 4 and 5 have no date; 1-3 map ascending in input order

	// Launch Wednesday 2026-02-25: remaining weekdays are 25, 26, 27.
	p := projectCreated(2026, time.February, 23)
	result := schedule.Allocate(p, items(5, "02-2026"), 2026, time.February)

	require.Len(t, result.Entries, 5)
	assert.Equal(t, calendar.NewDate(2026, time.February, 25), result.Entries[0].Date)
	assert.Equal(t, calendar.NewDate(2026, time.February, 26), result.Entries[1].Date)
	assert.Equal(t, calendar.NewDate(2026, time.February, 27), result.Entries[2].Date)
	assert.False(t, result.Entries[3].Assigned())
	assert.False(t, result.Entries[4].Assigned())

	// Input order is preserved.
	for i, e := range result.Entries {
		assert.Equal(t, fmt.Sprintf("post-%d", i+1), e.Item.ID)
	}
}

func TestAllocate_Underflow_NoPlaceholderEntries(t *testing.T) {
	// Fewer items than weekdays: output length equals input length.
	p := projectCreated(2026, time.January, 5)
	result := schedule.Allocate(p, items(2, "03-2026"), 2026, time.March)
	assert.Len(t, result.Entries, 2)
}

func TestAllocate_NoItems(t *testing.T) {
	p := projectCreated(2026, time.January, 5)
	result := schedule.Allocate(p, nil, 2026, time.March)
	assert.Empty(t, result.Entries)
}

func TestAllocate_Idempotent(t *testing.T) {
	// GIVEN: Identical inputs
	// THEN: Identical results - no clock or randomness involved

	p := projectCreated(2026, time.February, 11)
	in := items(7, "02-2026")
	first := schedule.Allocate(p, in, 2026, time.February)
	second := schedule.Allocate(p, in, 2026, time.February)
	assert.Equal(t, first, second)
}

// =============================================================================
// REQUIRED-COUNT TESTS
// =============================================================================

func TestRequiredCount_BeforeLaunchIsZero(t *testing.T) {
	// Created 2026-03-15, launch 2026-03-17; February owes nothing.
	p := projectCreated(2026, time.March, 15)
	assert.Equal(t, 0, schedule.RequiredCount(p, 2026, time.February))
}

func TestRequiredCount_LaunchMonthCountsTruncatedWeekdays(t *testing.T) {
	// Launch Friday 2026-02-13: 11 weekdays remain in February.
	p := projectCreated(2026, time.February, 11)
	assert.Equal(t, 11, schedule.RequiredCount(p, 2026, time.February))
}

func TestRequiredCount_PostLaunchIsFlatTwenty(t *testing.T) {
	// GIVEN: A project launched in January 2026
	// WHEN: Asking the quota for May 2026 (21 true weekdays)
	// THEN: The flat 20 is returned, not the calendar count

	p := projectCreated(2026, time.January, 5)
	require.Len(t, calendar.WeekdaysInMonth(2026, time.May), 21)
	assert.Equal(t, 20, schedule.RequiredCount(p, 2026, time.May))
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

func TestAllocate_EndToEndFebruaryScenario(t *testing.T) {
	// GIVEN: createdAt 2026-02-11 (Wed), launch 2026-02-13 (Fri).
	//        February weekdays from the 13th: 13 16 17 18 19 20 23 24 25 26 27.
	// WHEN: Three items A, B, C are allocated for (2026, February)
	// THEN: They map to the 13th, 16th, and 17th; the quota is 11

	p := projectCreated(2026, time.February, 11)
	in := []schedule.ContentItem{
		{ID: "A", ProjectID: p.ID, Seq: 1, TargetMonth: "02-2026"},
		{ID: "B", ProjectID: p.ID, Seq: 2, TargetMonth: "02-2026"},
		{ID: "C", ProjectID: p.ID, Seq: 3, TargetMonth: "02-2026"},
	}

	result := schedule.Allocate(p, in, 2026, time.February)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, calendar.NewDate(2026, time.February, 13), result.Entries[0].Date)
	assert.Equal(t, calendar.NewDate(2026, time.February, 16), result.Entries[1].Date)
	assert.Equal(t, calendar.NewDate(2026, time.February, 17), result.Entries[2].Date)

	assert.Equal(t, 11, schedule.RequiredCount(p, 2026, time.February))
}
