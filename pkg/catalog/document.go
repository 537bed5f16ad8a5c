package catalog

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/kbase/datacatalog/pkg/errors"
)

// Document serializes the catalog back to its canonical JSON document form.
// Loading the result yields a catalog identical to this one.
func (c *Catalog) Document() ([]byte, error) {
	data, err := json.MarshalIndent(c.documentForm(), "", "  ")
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return append(data, '\n'), nil
}

// DocumentYAML serializes the catalog to YAML, for human editing.
func (c *Catalog) DocumentYAML() ([]byte, error) {
	data, err := yaml.MarshalWithOptions(c.documentForm(),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}

// documentForm rebuilds the document structure from the loaded catalog.
func (c *Catalog) documentForm() document {
	doc := make(document, len(c.environments))
	for id, env := range c.environments {
		publicData := make(map[string]PublicDataEntry, env.public.Len())
		for _, entry := range env.public.List() {
			publicData[entry.ID] = entry
		}
		doc[id.String()] = environmentDocument{
			PublicData:  publicData,
			ExampleData: env.example,
		}
	}
	return doc
}
