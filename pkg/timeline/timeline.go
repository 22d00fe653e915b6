// Package timeline is the public entry point for rendering a project
// timeline. It composes the section list, filtered steps, grouped steps and
// progress summary into a single Snapshot that view layers consume.
//
// Basic usage:
//
//	ds, err := timeline.Load("timeline.json")
//	if err != nil {
//	    return err
//	}
//	dash := timeline.NewDashboard(ds)
//	snap := dash.Snapshot("Payments")
//	fmt.Printf("%d%% complete\n", snap.Progress.Percentage)
package timeline

import (
	"io"

	core "github.com/cokomi/timeline/internal/timeline"
)

// Re-exported model types.
type (
	Step            = core.Step
	Status          = core.Status
	SectionName     = core.SectionName
	Progress        = core.Progress
	SectionSummary  = core.SectionSummary
	Group           = core.Group
	Groups          = core.Groups
	Dataset         = core.Dataset
	Selection       = core.Selection
	ValidationError = core.ValidationError
)

// Re-exported constants.
const (
	StatusPending    = core.StatusPending
	StatusInProgress = core.StatusInProgress
	StatusCompleted  = core.StatusCompleted
	AllSections      = core.AllSections
)

// Load reads a dataset file (.json, .yaml, .yml or .csv).
func Load(path string) (*Dataset, error) {
	return core.Load(path)
}

// Default returns the dataset embedded in the binary.
func Default() (*Dataset, error) {
	return core.Default()
}

// ReadJSON decodes a JSON array of steps.
func ReadJSON(r io.Reader) (*Dataset, error) {
	return core.ReadJSON(r)
}

// ReadYAML decodes a YAML sequence of steps.
func ReadYAML(r io.Reader) (*Dataset, error) {
	return core.ReadYAML(r)
}

// ReadCSV decodes a CSV table of steps with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	return core.ReadCSV(r)
}

// New validates steps and returns them as a Dataset.
func New(steps []Step) (*Dataset, error) {
	return core.New(steps)
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return core.AllStatuses()
}

// ParseStatus parses a status name such as "in-progress" or "done".
func ParseStatus(s string) (Status, error) {
	return core.ParseStatus(s)
}

// FilterByStatus returns the steps with the given status, order preserved.
func FilterByStatus(steps []Step, status Status) []Step {
	return core.FilterByStatus(steps, status)
}

// GroupBySection buckets steps by section in first-occurrence order.
func GroupBySection(steps []Step) Groups {
	return core.GroupBySection(steps)
}

// StatusCounts counts steps per status.
func StatusCounts(steps []Step) map[Status]int {
	return core.StatusCounts(steps)
}

// Snapshot is every view-ready structure for one filter value.
type Snapshot struct {
	Sections        []SectionName    `json:"sections"`
	Selected        SectionName      `json:"selected"`
	Filtered        []Step           `json:"filtered"`
	Groups          Groups           `json:"groups"`
	Progress        Progress         `json:"progress"`
	SectionProgress []SectionSummary `json:"sectionProgress"`
	// ShowSectionHeaders is true when every section is on screen.
	ShowSectionHeaders bool `json:"showSectionHeaders"`
}

// Build derives a Snapshot from steps and the selected section. Progress
// always covers the full steps slice, regardless of selected.
func Build(steps []Step, selected SectionName) Snapshot {
	if selected == "" {
		selected = AllSections
	}
	filtered := core.FilterBySection(steps, selected)
	return Snapshot{
		Sections:           core.ListSections(steps),
		Selected:           selected,
		Filtered:           filtered,
		Groups:             core.GroupBySection(filtered),
		Progress:           core.ComputeProgress(steps),
		SectionProgress:    core.SectionProgress(steps),
		ShowSectionHeaders: selected.IsAll(),
	}
}

// IsLast reports whether the step at (group, index) is the final step of
// the whole rendering.
func (s Snapshot) IsLast(group, index int) bool {
	if group != len(s.Groups)-1 {
		return false
	}
	return index == len(s.Groups[group].Steps)-1
}

// Empty reports whether the selected filter matched no steps.
func (s Snapshot) Empty() bool {
	return len(s.Filtered) == 0
}
