package datacatalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbase/datacatalog"
)

func TestFacadeNew(t *testing.T) {
	cat, err := datacatalog.New()
	require.NoError(t, err)

	env, err := cat.Environment(datacatalog.EnvironmentProd)
	require.NoError(t, err)

	genomes, err := env.PublicEntry("genomes")
	require.NoError(t, err)
	assert.Equal(t, "KBasePublicGenomesV5", genomes.Workspace)
}

func TestFacadeLoad(t *testing.T) {
	doc := []byte(`{
		"next": {
			"publicData": {
				"media": {"name": "Media", "type": "KBaseBiochem.Media", "ws": "KBaseMedia", "search": false}
			},
			"exampleData": {"ws": "KBaseExampleData", "data_types": []}
		}
	}`)

	cat, err := datacatalog.Load(doc)
	require.NoError(t, err)
	assert.True(t, cat.HasEnvironment(datacatalog.EnvironmentNext))
}
