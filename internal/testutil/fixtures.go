// Package testutil provides fixtures and golden-file helpers for timeline tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/timeline"
)

// StepOption configures a test step.
type StepOption func(*timeline.Step)

// NewTestStep creates a pending step in section "Testing" with a generated title.
func NewTestStep(id int, opts ...StepOption) timeline.Step {
	s := timeline.Step{
		ID:          id,
		Title:       fmt.Sprintf("Step %d", id),
		Description: fmt.Sprintf("Description of step %d", id),
		Status:      timeline.StatusPending,
		Section:     "Testing",
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithStatus sets the step status.
func WithStatus(status timeline.Status) StepOption {
	return func(s *timeline.Step) {
		s.Status = status
	}
}

// WithSection sets the step section.
func WithSection(section string) StepOption {
	return func(s *timeline.Step) {
		s.Section = timeline.SectionName(section)
	}
}

// WithTitle sets the step title.
func WithTitle(title string) StepOption {
	return func(s *timeline.Step) {
		s.Title = title
	}
}

// WithDescription sets the step description.
func WithDescription(description string) StepOption {
	return func(s *timeline.Step) {
		s.Description = description
	}
}

// Completed marks the step completed on date (YYYY-MM-DD).
func Completed(date string) StepOption {
	return func(s *timeline.Step) {
		s.Status = timeline.StatusCompleted
		s.CompletedOn = timeline.DateString(date)
	}
}

// NewTestDataset builds a validated dataset, failing the test on error.
func NewTestDataset(t *testing.T, steps ...timeline.Step) *timeline.Dataset {
	t.Helper()

	ds, err := timeline.New(steps)
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}
	return ds
}

// SampleSteps returns six steps over three sections: 3 completed,
// 1 in progress and 2 pending (50%).
func SampleSteps() []timeline.Step {
	return []timeline.Step{
		NewTestStep(1, WithTitle("Design API"), WithSection("Backend"), Completed("2025-01-10")),
		NewTestStep(2, WithTitle("Write schema"), WithSection("Backend"), Completed("2025-01-20")),
		NewTestStep(3, WithTitle("Build login page"), WithSection("Frontend"), Completed("2025-02-01")),
		NewTestStep(4, WithTitle("Build checkout"), WithSection("Frontend"), WithStatus(timeline.StatusInProgress)),
		NewTestStep(5, WithTitle("Load testing"), WithSection("QA")),
		NewTestStep(6, WithTitle("Accessibility audit"), WithSection("QA")),
	}
}

// SampleDataset returns SampleSteps as a dataset.
func SampleDataset(t *testing.T) *timeline.Dataset {
	t.Helper()
	return NewTestDataset(t, SampleSteps()...)
}

// ConfigOption configures a test config.
type ConfigOption func(*config.Config)

// NewTestConfig creates a config for testing with optional configuration.
func NewTestConfig(t *testing.T, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithDataset sets the dataset path in the config.
func WithDataset(path string) ConfigOption {
	return func(c *config.Config) {
		c.Timeline.Dataset = path
	}
}

// WithTitleConfig sets the dashboard title.
func WithTitleConfig(title string) ConfigOption {
	return func(c *config.Config) {
		c.Timeline.Title = title
	}
}

// WithDefaultSection sets the section selected on startup.
func WithDefaultSection(section string) ConfigOption {
	return func(c *config.Config) {
		c.Timeline.DefaultSection = section
	}
}

// TempProject creates a temporary directory with a .timeline directory.
// The directory is removed when the test finishes.
func TempProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".timeline"), 0755); err != nil {
		t.Fatalf("Failed to create .timeline directory: %v", err)
	}
	return dir
}

// TempProjectWithConfig creates a temp project with .timeline/config.yaml.
func TempProjectWithConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	dir := TempProject(t)
	if err := cfg.Save(filepath.Join(dir, ".timeline", "config.yaml")); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return dir
}

// TempProjectFull creates a temp project whose config points at a JSON
// dataset written next to it.
func TempProjectFull(t *testing.T, cfg *config.Config, ds *timeline.Dataset) string {
	t.Helper()

	dir := TempProject(t)
	WriteDataset(t, filepath.Join(dir, ".timeline", "timeline.json"), ds)

	cfg.Timeline.Dataset = "timeline.json"
	if err := cfg.Save(filepath.Join(dir, ".timeline", "config.yaml")); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return dir
}

// WriteDataset writes ds to path, picking the encoding from the extension.
func WriteDataset(t *testing.T, path string, ds *timeline.Dataset) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create dataset file: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = ds.WriteYAML(f)
	case ".csv":
		err = ds.WriteCSV(f)
	default:
		err = ds.WriteJSON(f)
	}
	if err != nil {
		t.Fatalf("Failed to write dataset %s: %v", path, err)
	}
}
