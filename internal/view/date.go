package view

import "github.com/cokomi/timeline/internal/timeline"

// DateLayout is the display format for completion dates.
const DateLayout = "Jan 2, 2006"

// FormatCompletedOn renders a step's completion date, or "" when absent
// or unparseable.
func FormatCompletedOn(s timeline.Step) string {
	t, ok := s.CompletedDate()
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}
