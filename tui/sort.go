package tui

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskpad/domain"
)

// SortKey selects the active comparator for the board. SortNone displays the
// collection in the order it was fetched.
type SortKey int

const (
	SortNone SortKey = iota
	SortDueDate
	SortPriority
	SortCreated
	SortUpdated
	SortTitle
)

func (k SortKey) String() string {
	switch k {
	case SortDueDate:
		return "due date"
	case SortPriority:
		return "priority"
	case SortCreated:
		return "created"
	case SortUpdated:
		return "updated"
	case SortTitle:
		return "title"
	default:
		return "none"
	}
}

var titleCollator = collate.New(language.English, collate.Loose)

// sortTasks reorders tasks in place by the given key. The sort is stable so
// ties keep their prior relative order.
func sortTasks(tasks []domain.Task, key SortKey) {
	if key == SortNone {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return taskLess(tasks[i], tasks[j], key)
	})
}

func taskLess(a, b domain.Task, key SortKey) bool {
	switch key {
	case SortDueDate:
		// Dated tasks rank before undated ones; among dated, latest first.
		if a.DueDate == nil {
			return false
		}
		if b.DueDate == nil {
			return true
		}
		return a.DueDate.After(*b.DueDate)
	case SortPriority:
		return a.Priority.Rank() > b.Priority.Rank()
	case SortCreated:
		return a.CreatedAt.After(b.CreatedAt)
	case SortUpdated:
		return a.UpdatedAt.After(b.UpdatedAt)
	case SortTitle:
		return titleCollator.CompareString(a.Title, b.Title) < 0
	default:
		return false
	}
}
