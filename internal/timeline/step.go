package timeline

import (
	"strings"
	"time"
)

// SectionName labels a group of steps. Sections are implicit: every step
// carrying the same label belongs to the same section.
type SectionName string

// AllSections is the synthetic filter value that matches every step.
const AllSections SectionName = "All"

// String returns the section label.
func (n SectionName) String() string {
	return string(n)
}

// IsAll reports whether n is the "All" sentinel.
func (n SectionName) IsAll() bool {
	return n == AllSections
}

// Step is one unit of work in the timeline.
type Step struct {
	ID          int         `json:"id" yaml:"id" csv:"id"`
	Title       string      `json:"title" yaml:"title" csv:"title"`
	Description string      `json:"description" yaml:"description" csv:"description"`
	Status      Status      `json:"status" yaml:"status" csv:"status"`
	CompletedOn *string     `json:"completedOn" yaml:"completedOn" csv:"completed_on"`
	Section     SectionName `json:"section" yaml:"section" csv:"section"`
}

// dateLayouts are tried in order when interpreting CompletedOn.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// IsCompleted returns true if the step is completed.
func (s Step) IsCompleted() bool {
	return s.Status.IsCompleted()
}

// HasCompletedOn reports whether a non-empty completion date is present.
func (s Step) HasCompletedOn() bool {
	return s.CompletedOn != nil && strings.TrimSpace(*s.CompletedOn) != ""
}

// CompletedDate parses CompletedOn. The second return value is false when
// the date is absent or unparseable.
func (s Step) CompletedDate() (time.Time, bool) {
	if !s.HasCompletedOn() {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(*s.CompletedOn)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clone returns a copy of the step that shares no pointers with s.
func (s Step) Clone() Step {
	clone := s
	if s.CompletedOn != nil {
		date := *s.CompletedOn
		clone.CompletedOn = &date
	}
	return clone
}

// DateString is a helper for building steps with a completion date.
func DateString(date string) *string {
	return &date
}
