// Package datacatalog is the public entry point for the data source catalog.
// It re-exports the catalog types and constructors so that consumers can
// depend on a single import path:
//
//	cat, err := datacatalog.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	env, err := cat.Environment(datacatalog.EnvironmentProd)
package datacatalog

import (
	"github.com/kbase/datacatalog/pkg/catalog"
)

// Catalog is an immutable set of per-environment data source catalogs.
type Catalog = catalog.Catalog

// EnvironmentCatalog is the sub-catalog of one deployment environment.
type EnvironmentCatalog = catalog.EnvironmentCatalog

// PublicDataEntry describes one publicly browsable data source.
type PublicDataEntry = catalog.PublicDataEntry

// ExampleDataCategory is a named grouping of example dataset type tags.
type ExampleDataCategory = catalog.ExampleDataCategory

// EnvironmentID identifies a deployment environment.
type EnvironmentID = catalog.EnvironmentID

// Recognized deployment environments.
const (
	EnvironmentCI   = catalog.EnvironmentCI
	EnvironmentNext = catalog.EnvironmentNext
	EnvironmentProd = catalog.EnvironmentProd
)

// Option configures a catalog.
type Option = catalog.Option

// New creates a catalog from the given options and loads it. With no
// options it loads the document compiled into the binary.
func New(opts ...Option) (*Catalog, error) {
	return catalog.New(opts...)
}

// Load parses and validates a raw catalog document (JSON or YAML).
func Load(data []byte) (*Catalog, error) {
	return catalog.Load(data)
}

// WithEmbedded loads the document compiled into the binary (the default).
func WithEmbedded() Option { return catalog.WithEmbedded() }

// WithFile loads the document from a file on disk.
func WithFile(path string) Option { return catalog.WithFile(path) }

// WithDocument loads an in-memory document.
func WithDocument(data []byte) Option { return catalog.WithDocument(data) }
