// Package timeline provides the step data model, dataset loading and the
// aggregation functions that derive every view of a project timeline.
package timeline

import (
	"fmt"
	"strings"
)

// Status represents the progress state of a step.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// AllStatuses returns all valid status values in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseStatus parses a string into a Status, case-insensitive.
// Underscores and spaces are accepted in place of the hyphen.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	switch normalized {
	case "pending":
		return StatusPending, nil
	case "in-progress", "inprogress":
		return StatusInProgress, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	default:
		return StatusPending, fmt.Errorf("invalid status: %q", s)
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// IsCompleted returns true if the status is completed.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}
