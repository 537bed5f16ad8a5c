package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbase/datacatalog/internal/cmd/output"
)

// examplesCmd lists the example dataset categories of one environment.
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List example dataset categories of an environment",
	RunE: func(_ *cobra.Command, _ []string) error {
		env, err := selectedEnvironment()
		if err != nil {
			return err
		}

		categories := env.ExampleCategories()

		if output.Format(outputFlag) == output.FormatTable {
			data := output.Data{
				Headers: []string{
					output.Header("display_name"),
					output.Header("types"),
					output.Header("header"),
				},
			}
			for _, category := range categories {
				data.Rows = append(data.Rows, []string{
					category.DisplayName,
					strings.Join(category.TypeNames, ", "),
					category.Header,
				})
			}
			return formatter().Format(os.Stdout, data)
		}

		return formatter().Format(os.Stdout, map[string]any{
			"ws":         env.ExampleWorkspace(),
			"data_types": categories,
		})
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
