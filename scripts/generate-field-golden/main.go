package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	textfield "github.com/goliatone/go-textfield"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

func main() {
	var (
		schemaPath = flag.String("openapi", "pkg/openapi/testdata/accounts.yaml", "OpenAPI document path")
		schemaName = flag.String("schema", "Account", "component schema to convert")
		outputPath = flag.String("output", "pkg/openapi/testdata/accounts.fields.json", "output path for the serialized field configs")
	)
	flag.Parse()

	store, err := textfield.FieldsFromOpenAPI(context.Background(), pkgopenapi.SourceFromFile(*schemaPath), *schemaName)
	if err != nil {
		fail(err)
	}

	configs := make(map[string]fieldconfig.FieldConfig)
	for _, name := range store.Names() {
		cfg, _ := store.Field(name)
		configs[name] = cfg
	}

	payload, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		fail(err)
	}
	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fail(err)
	}
	if err := os.WriteFile(*outputPath, append(payload, '\n'), 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("wrote %d fields to %s\n", len(configs), *outputPath)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "generate-field-golden: %v\n", err)
	os.Exit(1)
}
