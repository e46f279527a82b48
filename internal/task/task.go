// Package task turns raw node text into structured task data: checkbox
// detection, embedded pattern extraction, and multi-line aggregation.
package task

import (
	"time"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/pattern"
)

// DefaultText is the fallback title when input carries no usable text.
const DefaultText = "New task"

// Task is a single parsed task record. ID is a fresh opaque identifier
// assigned per parse call. Pattern positions are offsets into the full input
// handed to ParseInput, not into individual lines.
type Task struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	IsComplete bool              `json:"is_complete"`
	Patterns   []pattern.Pattern `json:"patterns,omitempty"`
}

// ParsedData is the aggregate result of one parse call. The scalar fields
// mirror the first occurrence of each pattern type across all contributing
// lines; Tags collects every tag value.
type ParsedData struct {
	Tasks    []Task     `json:"tasks"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Priority string     `json:"priority,omitempty"`
	Assignee string     `json:"assignee,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
}
