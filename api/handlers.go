/*
handlers.go - HTTP API handlers for the operations dashboard

PURPOSE:
  Exposes the dashboard via REST API. Handles HTTP request/response, JSON
  serialization, and delegates all scheduling decisions to the schedule
  package. Handlers fetch rows, hand plain values to the engine, and
  serialize what comes back - the engine itself performs no I/O.

ENDPOINTS:
  Clinics:
    GET    /api/clinics                  List clinics with quota counters
    POST   /api/clinics                  Create clinic
    GET    /api/clinics/{id}             Get clinic
    DELETE /api/clinics/{id}             Delete clinic
    GET    /api/clinics/{id}/folders     Month-labeled folder index
    GET    /api/clinics/{id}/payments    Payment history
    POST   /api/clinics/{id}/payments    Record payment

  Projects:
    GET    /api/projects                 List projects
    POST   /api/projects                 Create project
    GET    /api/projects/{id}            Get project
    PUT    /api/projects/{id}            Update name/status
    DELETE /api/projects/{id}            Delete project and its posts
    GET    /api/projects/{id}/schedule   Month schedule (?month=MM-YYYY)
    GET    /api/projects/{id}/posts      List posts in seq order
    POST   /api/projects/{id}/posts      Create post

  Posts:
    GET    /api/posts/{id}               Get post
    PUT    /api/posts/{id}               Update editable fields
    DELETE /api/posts/{id}               Delete post

  Leads:
    GET    /api/leads                    List leads
    POST   /api/leads                    Create lead
    DELETE /api/leads/{id}               Delete lead

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed month labels, bad JSON, unknown statuses
  - 404: Missing clinic/project/post
  - 500: Storage errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - schedule: The allocation engine these handlers wrap
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/studiopulse/opsboard/calendar"
	"github.com/studiopulse/opsboard/schedule"
	"github.com/studiopulse/opsboard/store/sqlite"
)

// defaultMonthLabel is served when a schedule request omits ?month.
const defaultMonthLabel = "01-2026"

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// now is injectable so quota tests can pin the current month.
	now func() time.Time
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store, now: time.Now}
}

// =============================================================================
// SCHEDULE
// =============================================================================

// GetProjectSchedule computes the month's planning board for one project.
func (h *Handler) GetProjectSchedule(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	label := r.URL.Query().Get("month")
	if label == "" {
		label = defaultMonthLabel
	}
	month, year, err := calendar.ParseMonthLabel(label)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month label", err)
		return
	}

	project, err := h.Store.GetProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", err)
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found", nil)
		return
	}

	posts, err := h.Store.ListPostsForMonth(r.Context(), projectID, label)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load posts", err)
		return
	}

	window := schedule.ResolveWindow(*project, year, month)
	result := schedule.Allocate(*project, posts, year, month)

	entries := make([]ScheduleEntryDTO, len(result.Entries))
	for i, e := range result.Entries {
		dayShort, dayNumber := schedule.CompactDay(e)
		entries[i] = ScheduleEntryDTO{
			ID:        e.Item.ID,
			Title:     schedule.ShortTitle(e.Item, i+1),
			ImageRef:  e.Item.ImageRef,
			Caption:   e.Item.Caption,
			DateLabel: schedule.DateLabel(e),
			DayShort:  dayShort,
			DayNumber: dayNumber,
			Date:      schedule.ISODate(e),
			Status:    string(e.Item.Status),
		}
	}

	writeJSON(w, http.StatusOK, ScheduleDTO{
		ProjectID:     projectID,
		Month:         label,
		LaunchDate:    window.LaunchDate.ISO(),
		Window:        window.Classification.String(),
		RequiredPosts: schedule.RequiredCount(*project, year, month),
		Entries:       entries,
	})
}

// =============================================================================
// CLINICS
// =============================================================================

// ListClinics returns every clinic with its current-month fulfillment
// counters. The counters come from the clinic's newest project; clinics
// without projects report 0/0.
func (h *Handler) ListClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.Store.ListClinics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list clinics", err)
		return
	}

	now := h.now().UTC()
	label := calendar.FormatMonthLabel(now.Month(), now.Year())

	dtos := make([]ClinicDTO, len(clinics))
	for i, c := range clinics {
		dto := ClinicDTO{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
			City:  c.City,
		}

		projects, err := h.Store.ListProjectsByClinic(r.Context(), c.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list projects", err)
			return
		}
		if len(projects) > 0 {
			// Projects arrive in createdAt order; the newest drives the quota.
			project := projects[len(projects)-1]
			dto.RequiredPosts = schedule.RequiredCount(project, now.Year(), now.Month())

			count, err := h.Store.CountPostsForMonth(r.Context(), project.ID, label)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to count posts", err)
				return
			}
			dto.CurrentPosts = count
		}
		dtos[i] = dto
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateClinic creates a clinic.
func (h *Handler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req CreateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}

	clinic := sqlite.Clinic{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
	}
	if err := h.Store.SaveClinic(r.Context(), clinic); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save clinic", err)
		return
	}

	writeJSON(w, http.StatusCreated, ClinicDTO{
		ID: clinic.ID, Name: clinic.Name, Email: clinic.Email,
		Phone: clinic.Phone, City: clinic.City,
	})
}

// GetClinic returns a single clinic.
func (h *Handler) GetClinic(w http.ResponseWriter, r *http.Request) {
	clinic, err := h.Store.GetClinic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load clinic", err)
		return
	}
	if clinic == nil {
		writeError(w, http.StatusNotFound, "Clinic not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, ClinicDTO{
		ID: clinic.ID, Name: clinic.Name, Email: clinic.Email,
		Phone: clinic.Phone, City: clinic.City,
	})
}

// DeleteClinic removes a clinic.
func (h *Handler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteClinic(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete clinic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// GetClinicFolders returns the month-labeled folder index for a clinic.
func (h *Handler) GetClinicFolders(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "id")

	clinic, err := h.Store.GetClinic(r.Context(), clinicID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load clinic", err)
		return
	}
	if clinic == nil {
		writeError(w, http.StatusNotFound, "Clinic not found", nil)
		return
	}

	projects, err := h.Store.ListProjectsByClinic(r.Context(), clinicID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list projects", err)
		return
	}

	itemsByProject := make(map[string][]schedule.ContentItem, len(projects))
	for _, p := range projects {
		items, err := h.Store.ListPostsByProject(r.Context(), p.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list posts", err)
			return
		}
		itemsByProject[p.ID] = items
	}

	folders := schedule.IndexFolders(projects, itemsByProject)
	dtos := make([]FolderDTO, len(folders))
	for i, f := range folders {
		dtos[i] = FolderDTO{
			ID:     f.ProjectID,
			Name:   f.Name,
			Count:  f.Count,
			Year:   f.Year,
			Accent: f.Accent,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PROJECTS
// =============================================================================

func projectDTO(p schedule.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID,
		ClinicID:  p.ClinicID,
		Name:      p.Name,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func validProjectStatus(s schedule.ProjectStatus) bool {
	switch s {
	case schedule.ProjectAwaitingPayment, schedule.ProjectApproved,
		schedule.ProjectInProgress, schedule.ProjectFinished, schedule.ProjectPublished:
		return true
	}
	return false
}

// ListProjects returns all projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list projects", err)
		return
	}

	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = projectDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateProject creates a project for an existing clinic. The creation
// instant is recorded once here and anchors the launch date forever.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.ClinicID == "" {
		writeError(w, http.StatusBadRequest, "Name and clinicId are required", nil)
		return
	}

	clinic, err := h.Store.GetClinic(r.Context(), req.ClinicID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load clinic", err)
		return
	}
	if clinic == nil {
		writeError(w, http.StatusNotFound, "Clinic not found", nil)
		return
	}

	status := schedule.ProjectStatus(req.Status)
	if req.Status == "" {
		status = schedule.ProjectAwaitingPayment
	}
	if !validProjectStatus(status) {
		writeError(w, http.StatusBadRequest, "Unknown project status", nil)
		return
	}

	project := schedule.Project{
		ID:        uuid.NewString(),
		ClinicID:  req.ClinicID,
		Name:      req.Name,
		Status:    status,
		CreatedAt: h.now().UTC(),
	}
	if err := h.Store.SaveProject(r.Context(), project); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save project", err)
		return
	}

	writeJSON(w, http.StatusCreated, projectDTO(project))
}

// GetProject returns a single project.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", err)
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, projectDTO(*project))
}

// UpdateProject updates a project's name and status. createdAt is not
// editable: moving it would silently move the launch date.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", err)
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found", nil)
		return
	}

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Status != "" {
		status := schedule.ProjectStatus(req.Status)
		if !validProjectStatus(status) {
			writeError(w, http.StatusBadRequest, "Unknown project status", nil)
			return
		}
		project.Status = status
	}

	if err := h.Store.SaveProject(r.Context(), *project); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save project", err)
		return
	}
	writeJSON(w, http.StatusOK, projectDTO(*project))
}

// DeleteProject removes a project and its posts.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete project", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// =============================================================================
// POSTS
// =============================================================================

func postDTO(item schedule.ContentItem) PostDTO {
	return PostDTO{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		Seq:         item.Seq,
		TargetMonth: item.TargetMonth,
		ImageRef:    item.ImageRef,
		Caption:     item.Caption,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}

func validItemStatus(s schedule.ItemStatus) bool {
	switch s {
	case schedule.ItemDraft, schedule.ItemReady, schedule.ItemDownloaded:
		return true
	}
	return false
}

// ListProjectPosts returns a project's posts in seq order.
func (h *Handler) ListProjectPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.ListPostsByProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = postDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePost creates a content item under a project.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	project, err := h.Store.GetProject(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load project", err)
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found", nil)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, _, err := calendar.ParseMonthLabel(req.TargetMonth); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid target month", err)
		return
	}

	status := schedule.ItemStatus(req.Status)
	if req.Status == "" {
		status = schedule.ItemDraft
	}
	if !validItemStatus(status) {
		writeError(w, http.StatusBadRequest, "Unknown post status", nil)
		return
	}

	created, err := h.Store.CreatePost(r.Context(), schedule.ContentItem{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		TargetMonth: req.TargetMonth,
		ImageRef:    req.ImageRef,
		Caption:     req.Caption,
		Status:      status,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save post", err)
		return
	}

	writeJSON(w, http.StatusCreated, postDTO(created))
}

// GetPost returns a single post.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Store.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load post", err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, postDTO(*post))
}

// UpdatePost updates a post's editable fields. Seq stays fixed so the
// schedule order survives edits.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Store.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load post", err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found", nil)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.TargetMonth != "" {
		if _, _, err := calendar.ParseMonthLabel(req.TargetMonth); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid target month", err)
			return
		}
		post.TargetMonth = req.TargetMonth
	}
	if req.ImageRef != "" {
		post.ImageRef = req.ImageRef
	}
	if req.Caption != "" {
		post.Caption = req.Caption
	}
	if req.Status != "" {
		status := schedule.ItemStatus(req.Status)
		if !validItemStatus(status) {
			writeError(w, http.StatusBadRequest, "Unknown post status", nil)
			return
		}
		post.Status = status
	}

	if err := h.Store.UpdatePost(r.Context(), *post); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save post", err)
		return
	}
	writeJSON(w, http.StatusOK, postDTO(*post))
}

// DeletePost removes a post.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// =============================================================================
// LEADS
// =============================================================================

// ListLeads returns all leads, newest first.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Store.ListLeads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leads", err)
		return
	}

	dtos := make([]LeadDTO, len(leads))
	for i, l := range leads {
		dtos[i] = LeadDTO{
			ID:         l.ID,
			ClinicName: l.ClinicName,
			Contact:    l.Contact,
			Email:      l.Email,
			Phone:      l.Phone,
			Source:     l.Source,
			Status:     l.Status,
			Notes:      l.Notes,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateLead creates a lead.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ClinicName == "" {
		writeError(w, http.StatusBadRequest, "ClinicName is required", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = "new"
	}

	lead := sqlite.Lead{
		ID:         uuid.NewString(),
		ClinicName: req.ClinicName,
		Contact:    req.Contact,
		Email:      req.Email,
		Phone:      req.Phone,
		Source:     req.Source,
		Status:     status,
		Notes:      req.Notes,
	}
	if err := h.Store.SaveLead(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save lead", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": lead.ID})
}

// DeleteLead removes a lead.
func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete lead", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// =============================================================================
// PAYMENTS
// =============================================================================

// ListClinicPayments returns a clinic's payment history, newest first.
func (h *Handler) ListClinicPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPaymentsByClinic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}

	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = PaymentDTO{
			ID:        p.ID,
			ClinicID:  p.ClinicID,
			Amount:    p.Amount.String(),
			Currency:  p.Currency,
			Method:    p.Method,
			Reference: p.Reference,
			PaidAt:    p.PaidAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePayment records a payment for a clinic.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, "id")

	clinic, err := h.Store.GetClinic(r.Context(), clinicID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load clinic", err)
		return
	}
	if clinic == nil {
		writeError(w, http.StatusNotFound, "Clinic not found", nil)
		return
	}

	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	paidAt := h.now().UTC()
	if req.PaidAt != "" {
		paidAt, err = time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid paidAt timestamp", err)
			return
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	payment := sqlite.Payment{
		ID:        uuid.NewString(),
		ClinicID:  clinicID,
		Amount:    amount,
		Currency:  currency,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    paidAt,
	}
	if err := h.Store.SavePayment(r.Context(), payment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save payment", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": payment.ID})
}

// =============================================================================
// ADMIN
// =============================================================================

// ResetDatabase wipes all data (dev only).
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
