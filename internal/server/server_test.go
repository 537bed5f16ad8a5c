package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbase/datacatalog/pkg/catalog"
	"github.com/kbase/datacatalog/pkg/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat, err := catalog.New(catalog.WithEmbedded())
	require.NoError(t, err)

	return New(cat, DefaultConfig(), logging.NewNopLogger())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := get(t, s, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	}
}

func TestListEnvironments(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/environments")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Environments []string `json:"environments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"ci", "next", "prod"}, body.Environments)
}

func TestListSources(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/environments/prod/sources")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Environment string `json:"environment"`
		Sources     []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Search bool   `json:"search"`
		} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "prod", body.Environment)
	require.NotEmpty(t, body.Sources)

	ids := make(map[string]bool)
	for _, src := range body.Sources {
		ids[src.ID] = true
	}
	assert.True(t, ids["genomes"])
	assert.True(t, ids["media"])
}

func TestListSourcesSearchOnly(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/environments/prod/sources?search=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sources []struct {
			ID     string `json:"id"`
			Search bool   `json:"search"`
		} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Sources)
	for _, src := range body.Sources {
		assert.True(t, src.Search, "entry %s should be searchable", src.ID)
	}
}

func TestGetSource(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/environments/ci/sources/genomes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Type      string `json:"type"`
		Workspace string `json:"ws"`
		Search    bool   `json:"search"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "genomes", body.ID)
	assert.Equal(t, "Genomes", body.Name)
	assert.Equal(t, "KBaseGenomes.Genome", body.Type)
	assert.Equal(t, "KBasePublicGenomesV5", body.Workspace)
	assert.True(t, body.Search)
}

func TestNotFoundMapping(t *testing.T) {
	s := newTestServer(t)

	t.Run("unknown environment", func(t *testing.T) {
		rec := get(t, s, "/api/v1/environments/staging/sources")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "staging")
	})

	t.Run("unknown source", func(t *testing.T) {
		rec := get(t, s, "/api/v1/environments/prod/sources/no-such-id")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no-such-id")
	})
}

func TestListExamples(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v1/environments/next/examples")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Workspace string `json:"ws"`
		DataTypes []struct {
			TypeNames   []string `json:"name"`
			DisplayName string   `json:"displayName"`
		} `json:"data_types"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "KBaseExampleData", body.Workspace)
	require.NotEmpty(t, body.DataTypes)
	assert.Equal(t, []string{"SingleEndLibrary", "PairedEndLibrary", "ReferenceAssembly"}, body.DataTypes[0].TypeNames)
}
