package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbase/datacatalog/internal/cmd/output"
	"github.com/kbase/datacatalog/pkg/catalog"
)

var searchOnly bool

// sourcesCmd lists the public data entries of one environment.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List public data sources of an environment",
	Example: `  datacatalog sources --env prod
  datacatalog sources --env ci --search-only -o json`,
	RunE: func(_ *cobra.Command, _ []string) error {
		env, err := selectedEnvironment()
		if err != nil {
			return err
		}

		var entries []catalog.PublicDataEntry
		if searchOnly {
			entries = env.SearchableEntries()
		} else {
			entries = env.PublicEntries()
		}

		if output.Format(outputFlag) == output.FormatTable {
			data := output.Data{
				Headers: []string{
					output.Header("id"),
					output.Header("name"),
					output.Header("type"),
					output.Header("workspace"),
					output.Header("search"),
				},
			}
			for _, entry := range entries {
				data.Rows = append(data.Rows, []string{
					entry.ID,
					entry.Name,
					entry.Type,
					entry.Workspace,
					strconv.FormatBool(entry.Search),
				})
			}
			return formatter().Format(os.Stdout, data)
		}

		return formatter().Format(os.Stdout, entriesDocument(entries))
	},
}

// sourceCmd shows one public data entry.
var sourceCmd = &cobra.Command{
	Use:   "source <id>",
	Short: "Show one public data source",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		env, err := selectedEnvironment()
		if err != nil {
			return err
		}

		entry, err := env.PublicEntry(args[0])
		if err != nil {
			return err
		}

		if output.Format(outputFlag) == output.FormatTable {
			data := output.Data{
				Headers: []string{output.Header("field"), output.Header("value")},
				Rows: [][]string{
					{"id", entry.ID},
					{"name", entry.Name},
					{"type", entry.Type},
					{"ws", entry.Workspace},
					{"search", strconv.FormatBool(entry.Search)},
				},
			}
			return formatter().Format(os.Stdout, data)
		}

		return formatter().Format(os.Stdout, entriesDocument([]catalog.PublicDataEntry{entry})[entry.ID])
	},
}

// selectedEnvironment loads the catalog and resolves the --env flag.
func selectedEnvironment() (*catalog.EnvironmentCatalog, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	id, err := environmentID()
	if err != nil {
		return nil, err
	}

	return cat.Environment(id)
}

// entriesDocument renders entries in the document form (id-keyed objects)
// for json/yaml output.
func entriesDocument(entries []catalog.PublicDataEntry) map[string]map[string]any {
	doc := make(map[string]map[string]any, len(entries))
	for _, entry := range entries {
		doc[entry.ID] = map[string]any{
			"name":   entry.Name,
			"type":   entry.Type,
			"ws":     entry.Workspace,
			"search": entry.Search,
		}
	}
	return doc
}

func init() {
	sourcesCmd.Flags().BoolVar(&searchOnly, "search-only", false, "list only entries exposed to the search subsystem")
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(sourceCmd)
}
