package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cokomi/timeline/internal/config"
	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

var docsOutput string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate dataset and configuration reference",
	Long: `Generate Markdown reference documentation.

Examples:
    timeline docs schema                # Dataset format
    timeline docs config                # Configuration reference
    timeline docs schema -o docs/       # Custom output location`,
}

var docsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate dataset format documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDoc(cmd, "schema.md", generateSchemaDoc())
	},
}

var docsConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate configuration reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := generateConfigDoc()
		if err != nil {
			return err
		}
		return writeDoc(cmd, "config.md", content)
	},
}

func init() {
	docsCmd.PersistentFlags().StringVarP(&docsOutput, "output", "o", "", "output directory or file")

	docsCmd.AddCommand(docsSchemaCmd)
	docsCmd.AddCommand(docsConfigCmd)
	rootCmd.AddCommand(docsCmd)
}

// writeDoc prints content, or writes it to --output (a file, or name
// inside a directory).
func writeDoc(cmd *cobra.Command, name, content string) error {
	if docsOutput == "" {
		cmd.Print(content)
		return nil
	}

	outPath := docsOutput
	if info, err := os.Stat(docsOutput); err == nil && info.IsDir() {
		outPath = filepath.Join(docsOutput, name)
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	cmd.Printf("Written to %s\n", outPath)
	return nil
}

func generateSchemaDoc() string {
	var sb strings.Builder

	sb.WriteString("# Timeline Dataset Format\n\n")
	sb.WriteString("A dataset is an ordered list of steps. Order matters: sections are listed\n")
	sb.WriteString("in the order they first appear, and steps keep their order inside a section.\n\n")

	sb.WriteString("## Step Fields\n\n")
	sb.WriteString("| Field | CSV column | Type | Required | Description |\n")
	sb.WriteString("|-------|------------|------|----------|-------------|\n")
	sb.WriteString("| id | id | integer | Yes | Unique step identifier |\n")
	sb.WriteString("| title | title | string | Yes | Short step name |\n")
	sb.WriteString("| description | description | string | No | One-line detail |\n")
	sb.WriteString("| status | status | enum | Yes | See Status Values |\n")
	sb.WriteString("| completedOn | completed_on | date | No | YYYY-MM-DD or RFC 3339; display only |\n")
	sb.WriteString("| section | section | string | Yes | Section the step belongs to |\n")
	sb.WriteString("\n")

	sb.WriteString("## Status Values\n\n")
	sb.WriteString("| Status | Label | Icon | Counts as completed |\n")
	sb.WriteString("|--------|-------|------|---------------------|\n")
	for _, s := range timeline.AllStatuses() {
		badge := view.StatusBadge(s)
		done := "No"
		if s == timeline.StatusCompleted {
			done = "Yes"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", s, badge.Label, badge.Icon, done))
	}
	sb.WriteString("\n")
	sb.WriteString("Status parsing ignores case and accepts `_` or spaces for `-`;\n")
	sb.WriteString("`done` and `complete` mean completed.\n\n")

	sb.WriteString("## File Formats\n\n")
	sb.WriteString("The format is chosen by file extension:\n\n")
	sb.WriteString("- `.json`: array of step objects\n")
	sb.WriteString("- `.yaml`, `.yml`: sequence of step mappings\n")
	sb.WriteString("- `.csv`: header row, then one step per row\n\n")

	sb.WriteString("## Progress\n\n")
	sb.WriteString("Percentage is completed steps over all steps, rounded half up to a whole\n")
	sb.WriteString("number. An empty dataset is 0%. Progress always covers the whole dataset,\n")
	sb.WriteString("whatever section is selected.\n")

	return sb.String()
}

func generateConfigDoc() (string, error) {
	var sb strings.Builder

	sb.WriteString("# Timeline Configuration Reference\n\n")

	sb.WriteString("## Configuration Files\n\n")
	sb.WriteString("The CLI searches the working directory and its parents for:\n\n")
	sb.WriteString("1. `.timeline/config.yaml` (recommended)\n")
	sb.WriteString("2. `timeline.yaml`\n")
	sb.WriteString("3. `timeline.yml`\n")
	sb.WriteString("4. `timeline.toml`\n")
	sb.WriteString("\n")
	sb.WriteString("`--config FILE` skips the search. A relative `dataset` path is resolved\n")
	sb.WriteString("against the directory holding the config file.\n\n")

	defaults, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal defaults: %w", err)
	}
	sb.WriteString("## Defaults\n\n")
	sb.WriteString("```yaml\n")
	sb.Write(defaults)
	sb.WriteString("```\n\n")

	sb.WriteString("## Fields Reference\n\n")
	sb.WriteString("| Field | Type | Description |\n")
	sb.WriteString("|-------|------|-------------|\n")
	sb.WriteString("| timeline.title | string | Dashboard heading |\n")
	sb.WriteString("| timeline.dataset | string | Steps file; empty uses the built-in dataset |\n")
	sb.WriteString("| timeline.default_section | string | Filter applied when none is given |\n")
	sb.WriteString("| timeline.sections | map | Per-section `icon` and `color` overrides |\n")
	sb.WriteString("| timeline.server.host | string | Dashboard listen host |\n")
	sb.WriteString("| timeline.server.port | int | Dashboard listen port |\n")
	sb.WriteString("| timeline.server.read_timeout | duration | HTTP read timeout |\n")
	sb.WriteString("| timeline.server.request_timeout | duration | Per-request handler timeout |\n")
	sb.WriteString("| timeline.server.shutdown_timeout | duration | Grace period on SIGINT/SIGTERM |\n")
	sb.WriteString("| timeline.log.level | string | debug, info, warn, error |\n")
	sb.WriteString("| timeline.log.format | string | text, json |\n")

	return sb.String(), nil
}
