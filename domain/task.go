package domain

import (
	"errors"
	"strings"
	"time"
)

// DefaultStatus is assigned to new tasks created without an explicit status.
const DefaultStatus = "Not Started"

// ErrEmptyTitle rejects drafts whose title is empty after trimming.
var ErrEmptyTitle = errors.New("title must not be empty")

// Priority buckets tasks for display ordering. The zero value means the task
// carries no priority at all.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// ParsePriority maps a wire value onto a Priority. Unrecognized values land
// in the none bucket rather than failing the whole record.
func ParsePriority(s string) Priority {
	switch strings.TrimSpace(s) {
	case "Low":
		return PriorityLow
	case "Medium":
		return PriorityMedium
	case "High":
		return PriorityHigh
	default:
		return PriorityNone
	}
}

// Rank orders priorities for sorting: High=3, Medium=2, Low=1, none=0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return ""
	}
}

// MarshalJSON encodes the priority as its wire string; the absent variant
// encodes as the empty string.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON accepts the wire strings "Low", "Medium" and "High";
// anything else, including null and the empty string, decodes to
// PriorityNone.
func (p *Priority) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*p = PriorityNone
		return nil
	}
	*p = ParsePriority(s)
	return nil
}

// Task represents a single to-do item as served by the API. The server owns
// the id and both timestamps; clients hold a transient copy fetched on
// demand.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	Tags        string     `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskDraft is the creation payload submitted by the dashboard form.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	Tags        string     `json:"tags,omitempty"`
}

// Validate trims the title and rejects drafts without one. It mutates the
// draft so the persisted title is the trimmed form.
func (d *TaskDraft) Validate() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
