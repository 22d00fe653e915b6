package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/logging"
	"github.com/cokomi/timeline/internal/output"
	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

// settings is the resolved configuration shared by every command.
type settings struct {
	cfg     *config.Config
	cfgPath string // "" when running on defaults
	cwd     string
	logger  *slog.Logger
}

// environment is settings plus the loaded dataset.
type environment struct {
	*settings
	dataset *timeline.Dataset
	dash    *timeline.Dashboard
	theme   *view.Theme
}

// loadSettings applies global flags, finds and validates the config and
// builds the logger.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	output.SetColor(!noColor)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	s := &settings{cwd: cwd}

	switch {
	case cfgFile != "":
		s.cfgPath = cfgFile
		s.cfg, err = config.Load(cfgFile)
	default:
		if path, findErr := config.FindConfig(cwd); findErr == nil {
			s.cfgPath = path
			s.cfg, err = config.Load(path)
		} else {
			s.cfg = config.DefaultConfig()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		s.cfg.Timeline.Log.Level = logLevel
	}
	if logFormat != "" {
		s.cfg.Timeline.Log.Format = logFormat
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	s.logger, err = logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  s.cfg.Timeline.Log.Level,
		Format: s.cfg.Timeline.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	s.logger.Debug("configuration loaded", "config", s.configLabel())
	return s, nil
}

// datasetPath returns the dataset file to load, or "" for the embedded one.
// --data is relative to the working directory; the config's dataset key is
// relative to the config file.
func (s *settings) datasetPath() string {
	if dataFile != "" {
		if filepath.IsAbs(dataFile) {
			return dataFile
		}
		return filepath.Join(s.cwd, dataFile)
	}
	base := s.cwd
	if s.cfgPath != "" {
		base = filepath.Dir(s.cfgPath)
	}
	return s.cfg.DatasetPath(base)
}

func (s *settings) configLabel() string {
	if s.cfgPath == "" {
		return "(defaults)"
	}
	return s.cfgPath
}

func (s *settings) datasetLabel() string {
	if p := s.datasetPath(); p != "" {
		return p
	}
	return "(embedded)"
}

// loadDataset reads the configured dataset.
func (s *settings) loadDataset() (*timeline.Dataset, error) {
	path := s.datasetPath()
	if path == "" {
		return timeline.Default()
	}
	return timeline.Load(path)
}

// loadEnvironment loads settings and the dataset. Any failure is fatal for
// the calling command.
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	ds, err := s.loadDataset()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("dataset loaded", "source", ds.Source(), "steps", ds.Len())

	return &environment{
		settings: s,
		dataset:  ds,
		dash:     timeline.NewDashboard(ds),
		theme:    view.NewTheme(s.cfg.Timeline.Sections),
	}, nil
}

// selectedSection resolves a --section flag against the configured default.
func (e *environment) selectedSection(flag string) timeline.SectionName {
	if flag != "" {
		name := timeline.SectionName(flag)
		if !e.dash.NewSelection().Known(name) {
			e.logger.Debug("section not in dataset, nothing will match", "section", flag)
		}
		return name
	}
	if e.cfg.Timeline.DefaultSection != "" {
		return timeline.SectionName(e.cfg.Timeline.DefaultSection)
	}
	return timeline.AllSections
}
