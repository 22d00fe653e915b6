package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/output"
)

var (
	configValidate bool
	configFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate timeline configuration",
	Long: `Display the effective configuration after merging defaults with the
config file (.timeline/config.yaml, timeline.yaml or timeline.toml).

Examples:
    timeline config                     # Show current config
    timeline config --validate          # Check config validity
    timeline config --format yaml       # Output as YAML`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configValidate, "validate", false, "validate configuration and check paths")
	configCmd.Flags().StringVar(&configFormat, "format", "terminal", "output format: terminal, yaml, json")

	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if configValidate {
		return validateConfig(cmd, s)
	}

	return displayConfig(cmd, s)
}

func validateConfig(cmd *cobra.Command, s *settings) error {
	width := output.TerminalWidth()
	cmd.Println(output.Header("Configuration Validation", width))
	cmd.Println()

	errors := []string{}
	warnings := []string{}

	if s.cfgPath == "" {
		warnings = append(warnings, "Config file not found (using defaults)")
	} else {
		cmd.Printf("  %s Config file: %s\n", output.Color("[PASS]", output.Green), s.cfgPath)
	}

	if path := s.datasetPath(); path == "" {
		cmd.Printf("  %s Dataset: embedded\n", output.Color("[PASS]", output.Green))
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		errors = append(errors, fmt.Sprintf("Dataset not found: %s", path))
	} else {
		cmd.Printf("  %s Dataset: %s\n", output.Color("[PASS]", output.Green), path)
	}

	if err := s.cfg.Validate(); err != nil {
		errors = append(errors, err.Error())
	} else {
		cmd.Printf("  %s Server address: %s\n", output.Color("[PASS]", output.Green), s.cfg.Addr())
	}

	cmd.Println()

	for _, e := range errors {
		cmd.Printf("  %s %s\n", output.Color("[FAIL]", output.Red), e)
	}
	for _, w := range warnings {
		cmd.Printf("  %s %s\n", output.Color("[WARN]", output.Yellow), w)
	}

	cmd.Println()

	if len(errors) > 0 {
		cmd.Printf("Status: %s\n", output.Color("INVALID", output.Red))
		return NewExitError(1, "configuration validation failed")
	} else if len(warnings) > 0 {
		cmd.Printf("Status: %s\n", output.Color("VALID (with warnings)", output.Yellow))
	} else {
		cmd.Printf("Status: %s\n", output.Color("VALID", output.Green))
	}

	return nil
}

func displayConfig(cmd *cobra.Command, s *settings) error {
	switch configFormat {
	case "json":
		return displayConfigJSON(cmd, s.cfg)
	case "yaml":
		return displayConfigYAML(cmd, s.cfg)
	case "terminal", "":
		return displayConfigTerminal(cmd, s)
	default:
		return fmt.Errorf("unknown format %q (want terminal, yaml or json)", configFormat)
	}
}

func displayConfigJSON(cmd *cobra.Command, cfg *config.Config) error {
	data, err := sonic.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func displayConfigYAML(cmd *cobra.Command, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	cmd.Print(string(data))
	return nil
}

func displayConfigTerminal(cmd *cobra.Command, s *settings) error {
	width := output.TerminalWidth()
	tc := s.cfg.Timeline
	cmd.Println(output.Header("Timeline Configuration", width))
	cmd.Println()

	cmd.Println("Paths:")
	cmd.Printf("  Config file:     %s\n", s.configLabel())
	cmd.Printf("  Dataset:         %s\n", s.datasetLabel())
	cmd.Println()

	cmd.Println("Dashboard:")
	cmd.Printf("  Title:           %s\n", tc.Title)
	cmd.Printf("  Default section: %s\n", tc.DefaultSection)
	cmd.Println()

	cmd.Println("Server:")
	cmd.Printf("  Address:         %s\n", s.cfg.Addr())
	cmd.Printf("  Read timeout:    %s\n", tc.Server.ReadTimeout)
	cmd.Printf("  Request timeout: %s\n", tc.Server.RequestTimeout)
	cmd.Println()

	cmd.Println("Logging:")
	cmd.Printf("  Level:           %s\n", tc.Log.Level)
	cmd.Printf("  Format:          %s\n", tc.Log.Format)

	if len(tc.Sections) > 0 {
		names := make([]string, 0, len(tc.Sections))
		for name := range tc.Sections {
			names = append(names, name)
		}
		sort.Strings(names)

		cmd.Println()
		cmd.Println("Section styles:")
		for _, name := range names {
			style := tc.Sections[name]
			cmd.Printf("  %s: icon=%s color=%s\n", name, style.Icon, style.Color)
		}
	}

	return nil
}
