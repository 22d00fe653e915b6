package timeline

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Progress summarizes completion over a sequence of steps.
type Progress struct {
	CompletedCount int `json:"completedCount" yaml:"completedCount"`
	TotalCount     int `json:"totalCount" yaml:"totalCount"`
	Percentage     int `json:"percentage" yaml:"percentage"`
}

// SectionSummary is the progress of a single section.
type SectionSummary struct {
	Section  SectionName `json:"section" yaml:"section"`
	Progress Progress    `json:"progress" yaml:"progress"`
}

// Group is one bucket of GroupBySection output.
type Group struct {
	Section SectionName `json:"section"`
	Steps   []Step      `json:"steps"`
}

// Groups is an ordered mapping from section to steps. Iteration order is
// the order in which each section first occurred in the grouped input.
type Groups []Group

// ListSections returns "All" followed by every distinct section of steps
// in order of first appearance.
func ListSections(steps []Step) []SectionName {
	seen := make(map[SectionName]bool)
	sections := []SectionName{AllSections}
	for _, s := range steps {
		if !seen[s.Section] {
			seen[s.Section] = true
			sections = append(sections, s.Section)
		}
	}
	return sections
}

// FilterBySection returns the steps belonging to selected, preserving
// order. "All" returns the full sequence. A section that matches nothing
// yields an empty, non-nil slice.
func FilterBySection(steps []Step, selected SectionName) []Step {
	if selected.IsAll() {
		return append([]Step{}, steps...)
	}
	filtered := make([]Step, 0)
	for _, s := range steps {
		if s.Section == selected {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterByStatus returns the steps with the given status, preserving order.
func FilterByStatus(steps []Step, status Status) []Step {
	filtered := make([]Step, 0)
	for _, s := range steps {
		if s.Status == status {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// GroupBySection partitions steps by section. Every input step lands in
// exactly one bucket and keeps its relative order.
func GroupBySection(steps []Step) Groups {
	index := make(map[SectionName]int)
	groups := make(Groups, 0)
	for _, s := range steps {
		i, ok := index[s.Section]
		if !ok {
			i = len(groups)
			index[s.Section] = i
			groups = append(groups, Group{Section: s.Section})
		}
		groups[i].Steps = append(groups[i].Steps, s)
	}
	return groups
}

// ComputeProgress counts completed steps and derives a whole-number
// percentage rounded half up. An empty sequence reports 0%.
func ComputeProgress(steps []Step) Progress {
	p := Progress{TotalCount: len(steps)}
	for _, s := range steps {
		if s.IsCompleted() {
			p.CompletedCount++
		}
	}
	p.Percentage = percentage(p.CompletedCount, p.TotalCount)
	return p
}

// percentage computes round(part/total*100) in integer arithmetic.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}

// SectionProgress returns the progress of each section in first-occurrence order.
func SectionProgress(steps []Step) []SectionSummary {
	groups := GroupBySection(steps)
	summaries := make([]SectionSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, SectionSummary{
			Section:  g.Section,
			Progress: ComputeProgress(g.Steps),
		})
	}
	return summaries
}

// StatusCounts returns a map of status to count.
func StatusCounts(steps []Step) map[Status]int {
	counts := make(map[Status]int)
	for _, s := range steps {
		counts[s.Status]++
	}
	return counts
}

// Len returns the number of sections.
func (g Groups) Len() int {
	return len(g)
}

// Keys returns the section names in iteration order.
func (g Groups) Keys() []SectionName {
	keys := make([]SectionName, 0, len(g))
	for _, group := range g {
		keys = append(keys, group.Section)
	}
	return keys
}

// Get returns the steps of a section.
func (g Groups) Get(section SectionName) ([]Step, bool) {
	for _, group := range g {
		if group.Section == section {
			return group.Steps, true
		}
	}
	return nil, false
}

// TotalSteps returns the sum of all bucket sizes.
func (g Groups) TotalSteps() int {
	total := 0
	for _, group := range g {
		total += len(group.Steps)
	}
	return total
}

// MarshalJSON encodes the groups as a JSON object keyed by section,
// keeping first-occurrence key order.
func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(string(group.Section))
		if err != nil {
			return nil, err
		}
		steps := group.Steps
		if steps == nil {
			steps = []Step{}
		}
		value, err := sonic.Marshal(steps)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
