package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	textfield "github.com/goliatone/go-textfield"
	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for unsupported %s hints.\n", pkgopenapi.ExtensionNamespace); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"examples/fixtures/accounts.yaml",
			"pkg/openapi/testdata/accounts.yaml",
		}
	}

	ctx := context.Background()
	parser := textfield.NewParser(pkgopenapi.WithValidation(false))

	failed := false
	for _, path := range paths {
		violations, err := lintFile(ctx, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, v := range violations {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, v)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser pkgopenapi.Parser, path string) ([]pkgopenapi.Violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	schemas, err := parser.Schemas(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse schemas: %w", err)
	}
	return pkgopenapi.Lint(schemas), nil
}
