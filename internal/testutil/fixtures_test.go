package testutil

import (
	"path/filepath"
	"testing"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/timeline"
)

func TestNewTestStep(t *testing.T) {
	s := NewTestStep(7)

	if s.ID != 7 {
		t.Errorf("ID = %d, want 7", s.ID)
	}
	if s.Title != "Step 7" {
		t.Errorf("Title = %q, want %q", s.Title, "Step 7")
	}
	if s.Status != timeline.StatusPending {
		t.Errorf("Status = %q, want pending", s.Status)
	}
	if s.CompletedOn != nil {
		t.Errorf("CompletedOn = %v, want nil", *s.CompletedOn)
	}
}

func TestNewTestStepWithOptions(t *testing.T) {
	s := NewTestStep(3,
		WithTitle("Ship it"),
		WithDescription("Release to production"),
		WithSection("Release"),
		Completed("2025-03-04"),
	)

	if s.Title != "Ship it" || s.Description != "Release to production" {
		t.Errorf("unexpected text fields: %+v", s)
	}
	if s.Section != "Release" {
		t.Errorf("Section = %q, want Release", s.Section)
	}
	if s.Status != timeline.StatusCompleted {
		t.Errorf("Status = %q, want completed", s.Status)
	}
	if s.CompletedOn == nil || *s.CompletedOn != "2025-03-04" {
		t.Errorf("CompletedOn = %v, want 2025-03-04", s.CompletedOn)
	}
}

func TestSampleDataset(t *testing.T) {
	ds := SampleDataset(t)

	if ds.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", ds.Len())
	}

	p := timeline.ComputeProgress(ds.Steps())
	if p.CompletedCount != 3 || p.Percentage != 50 {
		t.Errorf("progress = %+v, want 3 completed at 50%%", p)
	}

	sections := timeline.ListSections(ds.Steps())
	want := []timeline.SectionName{"All", "Backend", "Frontend", "QA"}
	if len(sections) != len(want) {
		t.Fatalf("sections = %v, want %v", sections, want)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Errorf("sections[%d] = %q, want %q", i, sections[i], want[i])
		}
	}
}

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig(t,
		WithDataset("data/steps.yaml"),
		WithTitleConfig("Launch plan"),
		WithDefaultSection("QA"),
	)

	if cfg.Timeline.Dataset != "data/steps.yaml" {
		t.Errorf("Dataset = %q", cfg.Timeline.Dataset)
	}
	if cfg.Timeline.Title != "Launch plan" {
		t.Errorf("Title = %q", cfg.Timeline.Title)
	}
	if cfg.Timeline.DefaultSection != "QA" {
		t.Errorf("DefaultSection = %q", cfg.Timeline.DefaultSection)
	}
}

func TestTempProjectFull(t *testing.T) {
	dir := TempProjectFull(t, NewTestConfig(t), SampleDataset(t))

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}

	path := cfg.DatasetPath(filepath.Join(dir, ".timeline"))
	ds, err := timeline.Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	if ds.Len() != 6 {
		t.Errorf("Len() = %d, want 6", ds.Len())
	}
}

func TestWriteDatasetFormats(t *testing.T) {
	dir := t.TempDir()
	ds := SampleDataset(t)

	for _, name := range []string{"steps.json", "steps.yaml", "steps.csv"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			WriteDataset(t, path, ds)

			loaded, err := timeline.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.Len() != ds.Len() {
				t.Errorf("Len() = %d, want %d", loaded.Len(), ds.Len())
			}
		})
	}
}
