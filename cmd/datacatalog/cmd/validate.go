package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbase/datacatalog/pkg/catalog"
	"github.com/kbase/datacatalog/pkg/errors"
)

// validateCmd checks a catalog document against the schema.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog document",
	Long: `Validate parses a catalog document (JSON or YAML) and checks it against
the catalog schema. On failure the offending document location is printed
and the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.WrapIO("read", args[0], err)
		}

		cat, err := catalog.Load(data)
		if err != nil {
			var schemaErr *errors.SchemaError
			if stderrors.As(err, &schemaErr) && schemaErr.Path != "" {
				fmt.Fprintf(os.Stderr, "%s: invalid at %s: %s\n", args[0], schemaErr.Path, schemaErr.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return err
		}

		if !quiet {
			fmt.Printf("%s: valid (%d environments)\n", args[0], len(cat.Environments()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
