package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kbase/datacatalog/pkg/catalog"
)

// sourceResponse is the API form of a public data entry. The document form
// keys entries by id, so the entry struct itself does not serialize its id;
// the API includes it explicitly.
type sourceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Workspace string `json:"ws"`
	Search    bool   `json:"search"`
}

func toSourceResponse(entry catalog.PublicDataEntry) sourceResponse {
	return sourceResponse{
		ID:        entry.ID,
		Name:      entry.Name,
		Type:      entry.Type,
		Workspace: entry.Workspace,
		Search:    entry.Search,
	}
}

// environmentsResponse lists the configured environments.
type environmentsResponse struct {
	Environments []catalog.EnvironmentID `json:"environments"`
}

// sourcesResponse lists the public data entries of one environment.
type sourcesResponse struct {
	Environment catalog.EnvironmentID `json:"environment"`
	Sources     []sourceResponse      `json:"sources"`
}

// examplesResponse lists the example data of one environment.
type examplesResponse struct {
	Environment catalog.EnvironmentID         `json:"environment"`
	Workspace   string                        `json:"ws"`
	DataTypes   []catalog.ExampleDataCategory `json:"data_types"`
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListEnvironments returns the configured environment names.
func (s *Server) handleListEnvironments(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, environmentsResponse{
		Environments: s.catalog.Environments(),
	})
}

// environment resolves the {env} URL parameter, writing the error response
// itself when the environment is unknown.
func (s *Server) environment(w http.ResponseWriter, r *http.Request) (*catalog.EnvironmentCatalog, bool) {
	id := catalog.EnvironmentID(chi.URLParam(r, "env"))
	env, err := s.catalog.Environment(id)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return env, true
}

// handleListSources returns the public data entries of one environment.
// With ?search=true only entries exposed to the search subsystem are listed.
func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	env, ok := s.environment(w, r)
	if !ok {
		return
	}

	var entries []catalog.PublicDataEntry
	if r.URL.Query().Get("search") == "true" {
		entries = env.SearchableEntries()
	} else {
		entries = env.PublicEntries()
	}

	sources := make([]sourceResponse, len(entries))
	for i, entry := range entries {
		sources[i] = toSourceResponse(entry)
	}

	s.writeJSON(w, http.StatusOK, sourcesResponse{
		Environment: env.ID(),
		Sources:     sources,
	})
}

// handleGetSource returns one public data entry.
func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	env, ok := s.environment(w, r)
	if !ok {
		return
	}

	entry, err := env.PublicEntry(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toSourceResponse(entry))
}

// handleListExamples returns the example data block of one environment.
func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	env, ok := s.environment(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, examplesResponse{
		Environment: env.ID(),
		Workspace:   env.ExampleWorkspace(),
		DataTypes:   env.ExampleCategories(),
	})
}
