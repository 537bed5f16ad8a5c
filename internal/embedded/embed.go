// Package embedded carries the default data source catalog document and its
// JSON schema, compiled into the binary at build time.
package embedded

import (
	"embed"
)

// FS embeds the default catalog document and the catalog JSON schema.
//
//go:embed catalog/*
var FS embed.FS

// Well-known paths inside FS.
const (
	// DocumentPath is the embedded default catalog document.
	DocumentPath = "catalog/data_sources.json"

	// SchemaPath is the embedded JSON schema the loader validates against.
	SchemaPath = "catalog/schema.json"
)

// Document returns the raw embedded catalog document.
func Document() ([]byte, error) {
	return FS.ReadFile(DocumentPath)
}

// Schema returns the raw embedded catalog JSON schema.
func Schema() ([]byte, error) {
	return FS.ReadFile(SchemaPath)
}
