package catalog

import (
	"fmt"
	"strings"

	"github.com/kbase/datacatalog/pkg/errors"
)

// ExampleData groups the example dataset categories of one environment.
// All categories share a single example-data workspace.
type ExampleData struct {
	// Workspace is the workspace holding the example objects.
	Workspace string `json:"ws" yaml:"ws"`

	// Categories is the ordered list of example dataset categories.
	// Order is meaningful for display and preserved from the document.
	Categories []ExampleDataCategory `json:"data_types" yaml:"data_types"`
}

// ExampleDataCategory is a named grouping of example dataset type tags shown
// to users as starter content.
type ExampleDataCategory struct {
	// TypeNames is the ordered sequence of type-name strings belonging to
	// this category. The document field is "name".
	TypeNames []string `json:"name" yaml:"name"`

	// DisplayName is the human-readable category label.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Header is the descriptive subtitle shown under the label.
	Header string `json:"header" yaml:"header"`
}

// String implements fmt.Stringer.
func (c ExampleDataCategory) String() string {
	return fmt.Sprintf("%s [%s]", c.DisplayName, strings.Join(c.TypeNames, ", "))
}

// Validate checks the category's required fields. The path argument is the
// document location used in schema violation messages.
func (c ExampleDataCategory) Validate(path string) error {
	if len(c.TypeNames) == 0 {
		return errors.NewSchemaError(path+".name", "must be a non-empty sequence of type names")
	}
	for i, name := range c.TypeNames {
		if strings.TrimSpace(name) == "" {
			return errors.NewSchemaError(fmt.Sprintf("%s.name.%d", path, i), "type name must not be empty")
		}
	}
	if strings.TrimSpace(c.DisplayName) == "" {
		return errors.NewSchemaError(path+".displayName", "required field is missing or empty")
	}
	return nil
}

// Validate checks the example data block. The path argument is the document
// location used in schema violation messages.
func (d ExampleData) Validate(path string) error {
	if strings.TrimSpace(d.Workspace) == "" {
		return errors.NewSchemaError(path+".ws", "required field is missing or empty")
	}
	for i, category := range d.Categories {
		if err := category.Validate(fmt.Sprintf("%s.data_types.%d", path, i)); err != nil {
			return err
		}
	}
	return nil
}
