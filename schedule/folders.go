/*
folders.go - Month-labeled folder index for the browsing UI

PURPOSE:
  Groups a clinic's projects into "folders", one per project, labeled by
  month/year. Reuses the launch-date derivation for the fallback label but
  not the allocation engine's weekday truncation.

LABEL RULE:
  A folder with content takes its (month, year) from the FIRST item's
  target-month label - first meaning lowest Seq, per the ordering contract
  in types.go - not the earliest by date. A folder with no content, or with
  an unparseable label, falls back to the project's own creation month.

ACCENT RULE:
  Accents cycle through a fixed palette indexed by the project's position
  in the input sequence. Purely cosmetic.

SORT RULE:
  Summaries are sorted by project creation time, newest first, AFTER the
  per-project loop. Accents therefore reflect input order, not the final
  display order.
*/
package schedule

import (
	"sort"
	"time"

	"github.com/studiopulse/opsboard/calendar"
)

// folderPalette is the accent cycle for folder cards.
var folderPalette = []string{"#7C5CFF", "#FF7A59", "#2BB673", "#F4B000", "#3E8EF7"}

// FolderSummary is one browsable folder: a project with its item count and
// month label.
type FolderSummary struct {
	ProjectID string
	Name      string
	Count     int
	Year      int
	Accent    string
	CreatedAt time.Time
}

// IndexFolders builds folder summaries for every project past the
// awaiting-payment gate, newest project first. itemsByProject maps project
// ID to that project's content items in Seq order; missing or empty entries
// degrade to a zero count and the creation-month label.
func IndexFolders(projects []Project, itemsByProject map[string][]ContentItem) []FolderSummary {
	var folders []FolderSummary
	for i, p := range projects {
		if p.Status == ProjectAwaitingPayment {
			continue
		}

		items := itemsByProject[p.ID]
		month, year := folderLabel(p, items)

		folders = append(folders, FolderSummary{
			ProjectID: p.ID,
			Name:      month.String(),
			Count:     len(items),
			Year:      year,
			Accent:    folderPalette[i%len(folderPalette)],
			CreatedAt: p.CreatedAt,
		})
	}

	// Sort after building so accents keep their input-order cycle.
	sort.Slice(folders, func(a, b int) bool {
		return folders[a].CreatedAt.After(folders[b].CreatedAt)
	})
	return folders
}

// folderLabel picks the month/year shown on the folder card.
func folderLabel(p Project, items []ContentItem) (time.Month, int) {
	if len(items) > 0 {
		if month, year, err := calendar.ParseMonthLabel(items[0].TargetMonth); err == nil {
			return month, year
		}
	}
	created := calendar.DateOf(p.CreatedAt)
	return created.Month(), created.Year()
}
