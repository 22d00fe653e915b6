package cmd

import (
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var sectionsJSON bool

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section names",
	Long: `Print the section filter values: "All" first, then every section in
the order it first appears in the dataset.`,
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output as a JSON array")
}

func runSections(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	sections := env.dash.Sections()
	if sectionsJSON {
		data, err := sonic.Marshal(sections)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	for _, s := range sections {
		cmd.Println(s)
	}
	return nil
}
