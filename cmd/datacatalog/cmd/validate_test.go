package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbase/datacatalog/pkg/errors"
)

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		path := writeTempDoc(t, `{
			"ci": {
				"publicData": {
					"genomes": {"name": "Genomes", "type": "KBaseGenomes.Genome", "ws": "W", "search": true}
				},
				"exampleData": {"ws": "W", "data_types": []}
			}
		}`)

		assert.NoError(t, execute(t, "validate", path, "--quiet"))
	})

	t.Run("invalid document", func(t *testing.T) {
		path := writeTempDoc(t, `{
			"ci": {
				"publicData": {
					"genomes": {"name": "Genomes", "type": "KBaseGenomes.Genome", "search": true}
				},
				"exampleData": {"ws": "W", "data_types": []}
			}
		}`)

		err := execute(t, "validate", path, "--quiet")
		require.Error(t, err)
		assert.True(t, errors.IsSchemaError(err))
	})

	t.Run("missing file", func(t *testing.T) {
		err := execute(t, "validate", filepath.Join(t.TempDir(), "absent.json"), "--quiet")
		require.Error(t, err)
	})
}
