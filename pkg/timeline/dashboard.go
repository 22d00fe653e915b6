package timeline

import (
	core "github.com/cokomi/timeline/internal/timeline"
)

// Dashboard serves snapshots of one immutable dataset. The section list
// and progress figures do not depend on the filter and are computed once.
type Dashboard struct {
	steps           []Step
	source          string
	sections        []SectionName
	progress        Progress
	sectionProgress []SectionSummary
}

// NewDashboard builds a dashboard over ds.
func NewDashboard(ds *Dataset) *Dashboard {
	steps := ds.Steps()
	return &Dashboard{
		steps:           steps,
		source:          ds.Source(),
		sections:        core.ListSections(steps),
		progress:        core.ComputeProgress(steps),
		sectionProgress: core.SectionProgress(steps),
	}
}

// Snapshot returns the views for the selected section.
func (d *Dashboard) Snapshot(selected SectionName) Snapshot {
	if selected == "" {
		selected = AllSections
	}
	filtered := cloneSteps(core.FilterBySection(d.steps, selected))
	return Snapshot{
		Sections:           d.Sections(),
		Selected:           selected,
		Filtered:           filtered,
		Groups:             core.GroupBySection(filtered),
		Progress:           d.progress,
		SectionProgress:    append([]SectionSummary{}, d.sectionProgress...),
		ShowSectionHeaders: selected.IsAll(),
	}
}

// Sections returns the selectable sections, "All" first.
func (d *Dashboard) Sections() []SectionName {
	return append([]SectionName{}, d.sections...)
}

// Progress returns the progress over the whole dataset.
func (d *Dashboard) Progress() Progress {
	return d.progress
}

// SectionProgress returns per-section progress in first-occurrence order.
func (d *Dashboard) SectionProgress() []SectionSummary {
	return append([]SectionSummary{}, d.sectionProgress...)
}

// Steps returns every step in dataset order.
func (d *Dashboard) Steps() []Step {
	return cloneSteps(d.steps)
}

// cloneSteps deep-copies steps so callers never share CompletedOn with the
// memoized dataset.
func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}

// Len returns the number of steps.
func (d *Dashboard) Len() int {
	return len(d.steps)
}

// Source returns where the underlying dataset came from.
func (d *Dashboard) Source() string {
	return d.source
}

// NewSelection returns a selection over the dashboard's sections.
func (d *Dashboard) NewSelection() *Selection {
	return core.NewSelection(d.steps)
}
