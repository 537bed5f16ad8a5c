package catalog

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kbase/datacatalog/pkg/errors"
)

// document is the on-disk form of the catalog: environment name to
// environment sub-document.
type document map[string]environmentDocument

// environmentDocument is the on-disk form of one environment's catalog.
type environmentDocument struct {
	PublicData  map[string]PublicDataEntry `json:"publicData" yaml:"publicData"`
	ExampleData ExampleData                `json:"exampleData" yaml:"exampleData"`
}

// Load parses and validates a raw catalog document. The document may be JSON
// or YAML. Any structural or field violation fails the whole load with a
// SchemaError; no partial catalog is ever returned.
func Load(data []byte) (*Catalog, error) {
	// Normalize to JSON so one validation pipeline covers both formats.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &errors.SchemaError{
			Message: "document is not valid YAML or JSON",
			Err:     errors.NewParseError("yaml", "", err.Error(), err),
		}
	}

	if err := validateSchema(jsonData); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(jsonData, &doc); err != nil {
		return nil, &errors.SchemaError{
			Message: "document does not decode into the catalog structure",
			Err:     errors.WrapParse("json", "", err),
		}
	}

	return doc.build()
}

// build converts a decoded document into a Catalog, running the typed
// field validation on every entity.
func (doc document) build() (*Catalog, error) {
	cat := &Catalog{
		environments: make(map[EnvironmentID]*EnvironmentCatalog, len(doc)),
	}

	for name, envDoc := range doc {
		id := EnvironmentID(name)
		if !id.Valid() {
			return nil, errors.NewSchemaError(name,
				fmt.Sprintf("not a recognized environment (known: %s)",
					strings.Join(knownEnvironmentNames(), ", ")))
		}

		env, err := envDoc.build(id)
		if err != nil {
			return nil, err
		}
		cat.environments[id] = env
	}

	return cat, nil
}

// build converts one environment sub-document into an EnvironmentCatalog.
func (ed environmentDocument) build(id EnvironmentID) (*EnvironmentCatalog, error) {
	if ed.PublicData == nil {
		return nil, errors.NewSchemaError(id.String()+".publicData", "required field is missing")
	}

	env := &EnvironmentCatalog{
		id:      id,
		public:  NewEntries(),
		example: ed.ExampleData,
	}

	for entryID, entry := range ed.PublicData {
		entry.ID = entryID
		path := fmt.Sprintf("%s.publicData.%s", id, entryID)
		if err := entry.Validate(path); err != nil {
			return nil, err
		}
		if err := env.public.Set(entryID, &entry); err != nil {
			return nil, errors.WrapSchema(path, err)
		}
	}

	if err := ed.ExampleData.Validate(id.String() + ".exampleData"); err != nil {
		return nil, err
	}

	return env, nil
}
