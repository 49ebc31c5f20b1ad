/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// SCHEDULE
// =============================================================================

// ScheduleEntryDTO is one content item with its assigned weekday, as shown
// on the monthly planning board.
type ScheduleEntryDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageRef  string `json:"imageRef"`
	Caption   string `json:"caption"`
	DateLabel string `json:"dateLabel"`
	DayShort  string `json:"dayShort"`
	DayNumber string `json:"dayNumber"`
	Date      string `json:"date"` // YYYY-MM-DD, "" when unassigned
	Status    string `json:"status"`
}

// ScheduleDTO wraps a month's entries with the quota context.
type ScheduleDTO struct {
	ProjectID     string             `json:"projectId"`
	Month         string             `json:"month"` // MM-YYYY
	LaunchDate    string             `json:"launchDate"`
	Window        string             `json:"window"`
	RequiredPosts int                `json:"requiredPosts"`
	Entries       []ScheduleEntryDTO `json:"entries"`
}

// =============================================================================
// CLINICS / FOLDERS
// =============================================================================

// ClinicDTO is the per-client listing row, profile fields plus the monthly
// fulfillment counters.
type ClinicDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	RequiredPosts int    `json:"requiredPosts"`
	CurrentPosts  int    `json:"currentPosts"`
}

// CreateClinicRequest creates a clinic.
type CreateClinicRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// FolderDTO is one month-labeled folder card.
type FolderDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Year   int    `json:"year"`
	Accent string `json:"accent"`
}

// =============================================================================
// PROJECTS / POSTS
// =============================================================================

// ProjectDTO represents a project in API responses.
type ProjectDTO struct {
	ID        string `json:"id"`
	ClinicID  string `json:"clinicId"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	ClinicID string `json:"clinicId"`
	Name     string `json:"name"`
	Status   string `json:"status"`
}

// UpdateProjectRequest updates a project's mutable fields.
type UpdateProjectRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PostDTO represents a content item in API responses.
type PostDTO struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Seq         int64  `json:"seq"`
	TargetMonth string `json:"targetMonth"`
	ImageRef    string `json:"imageRef"`
	Caption     string `json:"caption"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// CreatePostRequest creates a content item.
type CreatePostRequest struct {
	TargetMonth string `json:"targetMonth"`
	ImageRef    string `json:"imageRef"`
	Caption     string `json:"caption"`
	Status      string `json:"status"`
}

// UpdatePostRequest updates a content item's editable fields.
type UpdatePostRequest struct {
	TargetMonth string `json:"targetMonth"`
	ImageRef    string `json:"imageRef"`
	Caption     string `json:"caption"`
	Status      string `json:"status"`
}

// =============================================================================
// LEADS / PAYMENTS
// =============================================================================

// LeadDTO represents a sales lead.
type LeadDTO struct {
	ID         string `json:"id"`
	ClinicName string `json:"clinicName"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"createdAt"`
}

// CreateLeadRequest creates a lead.
type CreateLeadRequest struct {
	ClinicName string `json:"clinicName"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// PaymentDTO represents a payment record. Amount is a decimal string.
type PaymentDTO struct {
	ID        string `json:"id"`
	ClinicID  string `json:"clinicId"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	PaidAt    string `json:"paidAt"`
}

// CreatePaymentRequest records a payment.
type CreatePaymentRequest struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	PaidAt    string `json:"paidAt"`
}
