/*
handlers_test.go - Handler tests over an in-memory store

Tests for:
- Month schedule endpoint (allocation, labels, quota)
- Clinic listing counters
- Folder index endpoint
- Input validation (month labels, statuses)
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopulse/opsboard/schedule"
	"github.com/studiopulse/opsboard/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestHandler(t *testing.T) *Handler {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h := NewHandler(store)
	h.now = func() time.Time {
		return time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func seedClinicProject(t *testing.T, h *Handler, createdAt time.Time) schedule.Project {
	ctx := context.Background()
	require.NoError(t, h.Store.SaveClinic(ctx, sqlite.Clinic{ID: "clinic-1", Name: "Bright Dental"}))

	p := schedule.Project{
		ID:        "proj-1",
		ClinicID:  "clinic-1",
		Name:      "Content retainer",
		Status:    schedule.ProjectInProgress,
		CreatedAt: createdAt,
	}
	require.NoError(t, h.Store.SaveProject(ctx, p))
	return p
}

func seedPosts(t *testing.T, h *Handler, projectID, targetMonth string, captions ...string) {
	ctx := context.Background()
	for i, caption := range captions {
		_, err := h.Store.CreatePost(ctx, schedule.ContentItem{
			ID:          fmt.Sprintf("%s-post-%d", targetMonth, i+1),
			ProjectID:   projectID,
			TargetMonth: targetMonth,
			Caption:     caption,
			Status:      schedule.ItemReady,
		})
		require.NoError(t, err)
	}
}

func doRequest(h *Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	NewRouter(h).ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// SCHEDULE ENDPOINT
// =============================================================================

func TestGetProjectSchedule_LaunchMonth(t *testing.T) {
	// GIVEN: A project created 2026-02-11 (launch Friday 2026-02-13) with
	//        three posts for February
	// WHEN: Fetching the February schedule
	// THEN: Posts land on the 13th, 16th, 17th and the quota is 11

	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))
	seedPosts(t, h, "proj-1", "02-2026", "Post A", "Post B", "Post C")

	rec := doRequest(h, "GET", "/api/projects/proj-1/schedule?month=02-2026", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto ScheduleDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))

	assert.Equal(t, "2026-02-13", dto.LaunchDate)
	assert.Equal(t, "launch-month", dto.Window)
	assert.Equal(t, 11, dto.RequiredPosts)

	require.Len(t, dto.Entries, 3)
	assert.Equal(t, "2026-02-13", dto.Entries[0].Date)
	assert.Equal(t, "2026-02-16", dto.Entries[1].Date)
	assert.Equal(t, "2026-02-17", dto.Entries[2].Date)
	assert.Equal(t, "13 February", dto.Entries[0].DateLabel)
	assert.Equal(t, "Fr", dto.Entries[0].DayShort)
	assert.Equal(t, "13", dto.Entries[0].DayNumber)
	assert.Equal(t, "Post A", dto.Entries[0].Title)
}

func TestGetProjectSchedule_OverflowEntriesHaveNoDate(t *testing.T) {
	// Launch 2026-02-25 leaves three weekdays; five posts overflow by two.
	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 23, 9, 0, 0, 0, time.UTC))
	seedPosts(t, h, "proj-1", "02-2026", "1", "2", "3", "4", "5")

	rec := doRequest(h, "GET", "/api/projects/proj-1/schedule?month=02-2026", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto ScheduleDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	require.Len(t, dto.Entries, 5)
	assert.Equal(t, "2026-02-27", dto.Entries[2].Date)
	assert.Equal(t, "", dto.Entries[3].Date)
	assert.Equal(t, "No date", dto.Entries[3].DateLabel)
	assert.Equal(t, "", dto.Entries[4].Date)
}

func TestGetProjectSchedule_DefaultMonthWhenOmitted(t *testing.T) {
	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))

	rec := doRequest(h, "GET", "/api/projects/proj-1/schedule", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto ScheduleDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, defaultMonthLabel, dto.Month)
	assert.Empty(t, dto.Entries)
}

func TestGetProjectSchedule_MalformedMonthRejected(t *testing.T) {
	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))

	rec := doRequest(h, "GET", "/api/projects/proj-1/schedule?month=13-20x6", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProjectSchedule_UnknownProject(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, "GET", "/api/projects/nope/schedule?month=02-2026", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// CLINIC LISTING
// =============================================================================

func TestListClinics_QuotaCounters(t *testing.T) {
	// GIVEN: now pinned to May 2026, a project launched in February,
	//        and three posts already created for May
	// THEN: The clinic row reports 3/20

	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))
	seedPosts(t, h, "proj-1", "05-2026", "a", "b", "c")

	rec := doRequest(h, "GET", "/api/clinics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []ClinicDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, 20, dtos[0].RequiredPosts)
	assert.Equal(t, 3, dtos[0].CurrentPosts)
}

func TestListClinics_NoProjects(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveClinic(context.Background(), sqlite.Clinic{ID: "c1", Name: "Empty"}))

	rec := doRequest(h, "GET", "/api/clinics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []ClinicDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Zero(t, dtos[0].RequiredPosts)
	assert.Zero(t, dtos[0].CurrentPosts)
}

// =============================================================================
// FOLDER INDEX
// =============================================================================

func TestGetClinicFolders(t *testing.T) {
	// GIVEN: One billable project with posts and one awaiting payment
	// THEN: Only the billable project appears, labeled by its first post

	h := newTestHandler(t)
	ctx := context.Background()
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))
	seedPosts(t, h, "proj-1", "03-2026", "x", "y")

	require.NoError(t, h.Store.SaveProject(ctx, schedule.Project{
		ID:        "proj-2",
		ClinicID:  "clinic-1",
		Name:      "Unpaid",
		Status:    schedule.ProjectAwaitingPayment,
		CreatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}))

	rec := doRequest(h, "GET", "/api/clinics/clinic-1/folders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []FolderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, "proj-1", dtos[0].ID)
	assert.Equal(t, "March", dtos[0].Name)
	assert.Equal(t, 2026, dtos[0].Year)
	assert.Equal(t, 2, dtos[0].Count)
	assert.NotEmpty(t, dtos[0].Accent)
}

func TestGetClinicFolders_UnknownClinic(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, "GET", "/api/clinics/nope/folders", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// CRUD VALIDATION
// =============================================================================

func TestCreatePost_MalformedTargetMonthRejected(t *testing.T) {
	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))

	rec := doRequest(h, "POST", "/api/projects/proj-1/posts",
		`{"targetMonth": "sometime", "caption": "hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePost_AssignsSequentialSeq(t *testing.T) {
	h := newTestHandler(t)
	seedClinicProject(t, h, time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC))

	var prev int64
	for i := 0; i < 3; i++ {
		rec := doRequest(h, "POST", "/api/projects/proj-1/posts",
			`{"targetMonth": "02-2026", "caption": "hello"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var dto PostDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
		assert.Greater(t, dto.Seq, prev)
		prev = dto.Seq
	}
}

func TestCreateProject_UnknownStatusRejected(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveClinic(context.Background(), sqlite.Clinic{ID: "c1", Name: "X"}))

	rec := doRequest(h, "POST", "/api/projects",
		`{"clinicId": "c1", "name": "Site", "status": "archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProject_ThenScheduleRoundTrip(t *testing.T) {
	// Full flow through the HTTP surface: clinic -> project -> post ->
	// schedule.

	h := newTestHandler(t)

	rec := doRequest(h, "POST", "/api/clinics", `{"name": "Smile Co"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var clinic ClinicDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&clinic))

	rec = doRequest(h, "POST", "/api/projects",
		fmt.Sprintf(`{"clinicId": %q, "name": "Site", "status": "in-progress"}`, clinic.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	var project ProjectDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&project))

	rec = doRequest(h, "POST", "/api/projects/"+project.ID+"/posts",
		`{"targetMonth": "06-2026", "caption": "Launch special"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(h, "GET", "/api/projects/"+project.ID+"/schedule?month=06-2026", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto ScheduleDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	require.Len(t, dto.Entries, 1)
	assert.Equal(t, "Launch special", dto.Entries[0].Title)
	// Created "now" (May 15), so June is post-launch: first weekday is June 1.
	assert.Equal(t, "2026-06-01", dto.Entries[0].Date)
	assert.Equal(t, 20, dto.RequiredPosts)
}
