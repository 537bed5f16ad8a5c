package catalog

import (
	"bytes"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kbase/datacatalog/internal/embedded"
	"github.com/kbase/datacatalog/pkg/errors"
)

// englishPrinter renders jsonschema violation messages.
var englishPrinter = message.NewPrinter(language.English)

// compiledSchema compiles the embedded catalog schema once per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := embedded.Schema()
	if err != nil {
		return nil, errors.WrapIO("read", embedded.SchemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.WrapParse("json", embedded.SchemaPath, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(embedded.SchemaPath, doc); err != nil {
		return nil, errors.WrapParse("json", embedded.SchemaPath, err)
	}

	return compiler.Compile(embedded.SchemaPath)
})

// validateSchema checks the raw JSON document against the catalog schema.
// Violations are reported as SchemaError with a dotted document path.
func validateSchema(jsonData []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return &errors.SchemaError{
			Message: "document is not valid JSON",
			Err:     errors.NewParseError("json", "", err.Error(), err),
		}
	}

	if err := schema.Validate(instance); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return schemaErrorFrom(ve)
		}
		return &errors.SchemaError{Message: err.Error(), Err: err}
	}
	return nil
}

// schemaErrorFrom converts a jsonschema validation error into a SchemaError
// pointing at the deepest failing location.
func schemaErrorFrom(ve *jsonschema.ValidationError) *errors.SchemaError {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	return &errors.SchemaError{
		Path:    strings.Join(leaf.InstanceLocation, "."),
		Message: leaf.ErrorKind.LocalizedString(englishPrinter),
		Err:     ve,
	}
}
