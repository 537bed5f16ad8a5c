package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbase/datacatalog/internal/cmd/output"
)

// environmentsCmd lists the environments configured in the catalog.
var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "List configured environments",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		envs := cat.Environments()

		if output.Format(outputFlag) == output.FormatTable {
			data := output.Data{
				Headers: []string{output.Header("environment"), output.Header("sources"), output.Header("example_categories")},
			}
			for _, id := range envs {
				env, err := cat.Environment(id)
				if err != nil {
					return err
				}
				data.Rows = append(data.Rows, []string{
					id.String(),
					strconv.Itoa(env.Entries().Len()),
					strconv.Itoa(len(env.ExampleCategories())),
				})
			}
			return formatter().Format(os.Stdout, data)
		}

		return formatter().Format(os.Stdout, map[string]any{"environments": envs})
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
