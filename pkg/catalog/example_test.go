package catalog_test

import (
	"fmt"
	"log"

	"github.com/kbase/datacatalog/pkg/catalog"
)

// Example demonstrates loading the embedded catalog and looking up an entry.
func Example() {
	cat, err := catalog.New(catalog.WithEmbedded())
	if err != nil {
		log.Fatal(err)
	}

	env, err := cat.Environment(catalog.EnvironmentProd)
	if err != nil {
		log.Fatal(err)
	}

	genomes, err := env.PublicEntry("genomes")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s is backed by workspace %s\n", genomes.Name, genomes.Workspace)
	// Output: Genomes is backed by workspace KBasePublicGenomesV5
}

// Example_load demonstrates loading a document supplied by the caller.
func Example_load() {
	doc := []byte(`{
		"ci": {
			"publicData": {
				"media": {"name": "Media", "type": "KBaseBiochem.Media", "ws": "KBaseMedia", "search": false}
			},
			"exampleData": {"ws": "KBaseExampleData", "data_types": []}
		}
	}`)

	cat, err := catalog.Load(doc)
	if err != nil {
		log.Fatal(err)
	}

	env, err := cat.Environment(catalog.EnvironmentCI)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ci has %d public data entries\n", env.Entries().Len())
	// Output: ci has 1 public data entries
}
