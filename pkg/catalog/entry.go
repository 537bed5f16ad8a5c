package catalog

import (
	"fmt"
	"strings"

	"github.com/kbase/datacatalog/pkg/errors"
)

// PublicDataEntry describes one publicly browsable data source. Entries are
// keyed by a short identifier within an environment's publicData map.
type PublicDataEntry struct {
	// ID is the short identifier the entry is keyed by, e.g. "genomes".
	// It is the map key in the document form, not a field of the object.
	ID string `json:"-" yaml:"-"`

	// Name is the human-readable display label.
	Name string `json:"name" yaml:"name"`

	// Type is the fully qualified type tag of the data objects, in
	// Module.TypeName form, e.g. "KBaseGenomes.Genome". Opaque here.
	Type string `json:"type" yaml:"type"`

	// Workspace is the backing data workspace identifier. Opaque here.
	Workspace string `json:"ws" yaml:"ws"`

	// Search marks the entry as exposed to the search subsystem.
	Search bool `json:"search" yaml:"search"`
}

// TypeModule returns the module part of the entry's type tag, or the whole
// tag when it has no Module.TypeName form.
func (e PublicDataEntry) TypeModule() string {
	if module, _, ok := strings.Cut(e.Type, "."); ok {
		return module
	}
	return e.Type
}

// TypeName returns the type-name part of the entry's type tag, or the whole
// tag when it has no Module.TypeName form.
func (e PublicDataEntry) TypeName() string {
	if _, name, ok := strings.Cut(e.Type, "."); ok {
		return name
	}
	return e.Type
}

// String implements fmt.Stringer.
func (e PublicDataEntry) String() string {
	return fmt.Sprintf("%s (%s in %s)", e.Name, e.Type, e.Workspace)
}

// Validate checks the entry's required fields. The path argument is the
// document location used in schema violation messages.
func (e PublicDataEntry) Validate(path string) error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.NewSchemaError(path+".name", "required field is missing or empty")
	}
	if strings.TrimSpace(e.Type) == "" {
		return errors.NewSchemaError(path+".type", "required field is missing or empty")
	}
	if strings.TrimSpace(e.Workspace) == "" {
		return errors.NewSchemaError(path+".ws", "required field is missing or empty")
	}
	return nil
}
