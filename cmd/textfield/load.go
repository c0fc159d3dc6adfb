package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	textfield "github.com/goliatone/go-textfield"
	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

var errNoSource = errors.New("one of --config or --openapi is required")

func (g *globalFlags) loadStore(ctx context.Context) (*fieldconfig.Store, error) {
	switch {
	case g.openapi != "":
		if g.schema == "" {
			return nil, errors.New("--schema is required with --openapi")
		}
		adapter := textfield.NewOpenAPIAdapter(nil)
		return adapter.Fields(ctx, pkgopenapi.SourceFromFile(g.openapi), g.schema)
	case g.config != "":
		info, err := os.Stat(g.config)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return fieldconfig.LoadFS(os.DirFS(g.config))
		}
		return fieldconfig.LoadFile(g.config)
	default:
		return nil, errNoSource
	}
}

// buildField picks name from the store, or the only field when name is empty.
func buildField(store *fieldconfig.Store, name string, options ...field.Option) (*field.Field, error) {
	if name == "" {
		names := store.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("--field is required when %d fields are defined", len(names))
		}
		name = names[0]
	}
	cfg, ok := store.Field(name)
	if !ok {
		return nil, fmt.Errorf("field %q is not defined", name)
	}
	return cfg.Build(options...)
}
