// Package config provides configuration management for the timeline CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cokomi/timeline/internal/logging"
	"github.com/cokomi/timeline/internal/view"
)

// Config represents the timeline configuration.
type Config struct {
	Timeline TimelineConfig `yaml:"timeline" toml:"timeline" json:"timeline"`
}

// TimelineConfig contains the main settings.
type TimelineConfig struct {
	// Title is shown above the progress summary.
	Title string `yaml:"title" toml:"title" json:"title"`

	// Dataset is the path to the steps file (.json, .yaml, .yml, .csv).
	// Empty selects the dataset embedded in the binary.
	Dataset string `yaml:"dataset" toml:"dataset" json:"dataset"`

	// DefaultSection is the filter applied when none is given.
	DefaultSection string `yaml:"default_section" toml:"default_section" json:"default_section"`

	// Sections overrides the icon and color of named sections.
	Sections map[string]view.SectionStyle `yaml:"sections" toml:"sections" json:"sections"`

	// Server configures the HTTP dashboard.
	Server ServerConfig `yaml:"server" toml:"server" json:"server"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log" toml:"log" json:"log"`
}

// ServerConfig contains HTTP dashboard settings.
type ServerConfig struct {
	Host            string        `yaml:"host" toml:"host" json:"host"`
	Port            int           `yaml:"port" toml:"port" json:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" toml:"read_timeout" json:"read_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" toml:"request_timeout" json:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level"`
	Format string `yaml:"format" toml:"format" json:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Timeline: TimelineConfig{
			Title:          "Project Timeline",
			DefaultSection: "All",
			Sections:       make(map[string]view.SectionStyle),
			Server: ServerConfig{
				Host:            "localhost",
				Port:            8080,
				ReadTimeout:     10 * time.Second,
				RequestTimeout:  30 * time.Second,
				ShutdownTimeout: 5 * time.Second,
			},
			Log: LogConfig{
				Level:  "info",
				Format: "text",
			},
		},
	}
}

// Load loads configuration from a YAML or TOML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return config, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// candidates are checked in order in every directory FindConfig visits.
var candidates = []string{
	".timeline/config.yaml",
	"timeline.yaml",
	"timeline.yml",
	"timeline.toml",
}

// FindConfig searches for a configuration file starting from the given path.
func FindConfig(startPath string) (string, error) {
	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no timeline configuration found")
}

// LoadFromDir loads configuration from the given directory, falling back
// to defaults when no config file exists.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// DatasetPath returns the resolved dataset path, or "" for the embedded dataset.
func (c *Config) DatasetPath(baseDir string) string {
	if c.Timeline.Dataset == "" {
		return ""
	}
	if filepath.IsAbs(c.Timeline.Dataset) {
		return c.Timeline.Dataset
	}
	return filepath.Join(baseDir, c.Timeline.Dataset)
}

// Addr returns the host:port the dashboard listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Timeline.Server.Host, c.Timeline.Server.Port)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var problems []string

	if p := c.Timeline.Server.Port; p < 0 || p > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", p))
	}
	if _, err := logging.ParseLevel(c.Timeline.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if _, err := logging.ParseFormat(c.Timeline.Log.Format); err != nil {
		problems = append(problems, "log.format: "+err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
