/*
types.go - Domain records consumed by the scheduling engine

PURPOSE:
  Plain-value views of the project and post rows the store hands to the
  engine. The engine reads these, never writes them.

STATUS ENUMS:
  Typed string constants, persisted as-is. Only projects past the
  awaiting-payment gate participate in folder indexing.

ORDERING CONTRACT:
  ContentItem.Seq is a monotonically increasing sequence number assigned at
  insert time. Stores MUST return items sorted by Seq; the engine assigns
  weekdays in exactly that order and FolderIndexer labels folders from the
  lowest-Seq item. This replaces the incidental retrieval-order dependency
  with an explicit contract.
*/
package schedule

import (
	"time"

	"github.com/studiopulse/opsboard/calendar"
)

// =============================================================================
// PROJECT
// =============================================================================

type ProjectStatus string

const (
	ProjectAwaitingPayment ProjectStatus = "awaiting-payment"
	ProjectApproved        ProjectStatus = "approved"
	ProjectInProgress      ProjectStatus = "in-progress"
	ProjectFinished        ProjectStatus = "finished"
	ProjectPublished       ProjectStatus = "published"
)

// Project is a client website/content project. CreatedAt anchors the
// launch-date derivation and is set exactly once.
type Project struct {
	ID        string
	ClinicID  string
	Name      string
	Status    ProjectStatus
	CreatedAt time.Time
}

// =============================================================================
// CONTENT ITEM
// =============================================================================

type ItemStatus string

const (
	ItemDraft      ItemStatus = "draft"
	ItemReady      ItemStatus = "ready"
	ItemDownloaded ItemStatus = "downloaded"
)

// ContentItem is a produced social-media post. TargetMonth is the "MM-YYYY"
// label chosen at creation time, independent of which calendar the item is
// displayed under.
type ContentItem struct {
	ID          string
	ProjectID   string
	Seq         int64
	TargetMonth string
	ImageRef    string
	Caption     string
	Status      ItemStatus
	CreatedAt   time.Time
}

// =============================================================================
// DERIVED RESULTS
// =============================================================================

// Assignment pairs one content item with the weekday it was mapped to.
// Date is the zero Date when the item overflowed the available weekdays.
type Assignment struct {
	Item ContentItem
	Date calendar.Date
}

// Assigned reports whether the item received a weekday.
func (a Assignment) Assigned() bool { return !a.Date.IsZero() }

// AllocationResult holds one entry per input item, in input order.
type AllocationResult struct {
	Entries []Assignment
}
