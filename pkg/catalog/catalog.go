// Package catalog provides the data source catalog: a static, environment
// scoped lookup table mapping deployment environments to public-data entries
// and example-data descriptors.
//
// The catalog document is loaded and validated once, then treated as
// immutable. A loaded Catalog is safe for concurrent readers without locking
// on the caller's side.
//
// Example usage:
//
//	// Load the catalog compiled into the binary (production use)
//	cat, err := catalog.New(catalog.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := cat.Environment(catalog.EnvironmentProd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, entry := range env.PublicEntries() {
//	    fmt.Printf("%s: %s\n", entry.ID, entry.Name)
//	}
package catalog

import (
	"sort"

	"github.com/kbase/datacatalog/pkg/errors"
)

// Catalog is an immutable set of per-environment data source catalogs.
type Catalog struct {
	environments map[EnvironmentID]*EnvironmentCatalog
}

// New creates a catalog from the given options and loads it. With no options
// it loads the embedded document.
func New(opts ...Option) (*Catalog, error) {
	options := catalogDefaults().apply(opts...)

	data, err := options.document()
	if err != nil {
		return nil, err
	}

	return Load(data)
}

// Environment returns the catalog of one environment. It fails with an
// UnknownEnvironmentError when the environment is not present in the
// loaded document.
func (c *Catalog) Environment(id EnvironmentID) (*EnvironmentCatalog, error) {
	env, ok := c.environments[id]
	if !ok {
		return nil, errors.NewUnknownEnvironmentError(id.String(), c.environmentNames())
	}
	return env, nil
}

// Environments returns the configured environment IDs, sorted.
func (c *Catalog) Environments() []EnvironmentID {
	ids := make([]EnvironmentID, 0, len(c.environments))
	for id := range c.environments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasEnvironment reports whether the environment is configured.
func (c *Catalog) HasEnvironment(id EnvironmentID) bool {
	_, ok := c.environments[id]
	return ok
}

// environmentNames returns the configured environment names, sorted, for
// error messages.
func (c *Catalog) environmentNames() []string {
	ids := c.Environments()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}

// EnvironmentCatalog is the sub-catalog of one deployment environment.
type EnvironmentCatalog struct {
	id      EnvironmentID
	public  *Entries
	example ExampleData
}

// ID returns the environment this catalog belongs to.
func (ec *EnvironmentCatalog) ID() EnvironmentID {
	return ec.id
}

// Entries returns the public data entries collection.
func (ec *EnvironmentCatalog) Entries() *Entries {
	return ec.public
}

// PublicEntry returns a public data entry by id. It fails with a
// NotFoundError when no entry has that id.
func (ec *EnvironmentCatalog) PublicEntry(id string) (PublicDataEntry, error) {
	entry, ok := ec.public.Get(id)
	if !ok {
		return PublicDataEntry{}, errors.NewNotFoundError("public data entry", id)
	}
	return *entry, nil
}

// HasPublicEntry reports whether a public data entry exists under this id.
func (ec *EnvironmentCatalog) HasPublicEntry(id string) bool {
	return ec.public.Exists(id)
}

// PublicEntries returns all public data entries in display order.
func (ec *EnvironmentCatalog) PublicEntries() []PublicDataEntry {
	return ec.public.List()
}

// SearchableEntries returns the public data entries exposed to the search
// subsystem, in display order.
func (ec *EnvironmentCatalog) SearchableEntries() []PublicDataEntry {
	return ec.public.Searchable()
}

// ExampleWorkspace returns the workspace shared by all example categories.
func (ec *EnvironmentCatalog) ExampleWorkspace() string {
	return ec.example.Workspace
}

// ExampleCategories returns the example dataset categories in document order.
// The returned slice is a copy; re-reading always yields the same sequence.
func (ec *EnvironmentCatalog) ExampleCategories() []ExampleDataCategory {
	categories := make([]ExampleDataCategory, len(ec.example.Categories))
	copy(categories, ec.example.Categories)
	return categories
}
