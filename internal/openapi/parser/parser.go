package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Schemas converts the document's component schemas into neutral Schema
// values keyed by component name.
func (p *Parser) Schemas(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	root, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if p.options.ValidateDocument {
		if err := root.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	if root.Components == nil || len(root.Components.Schemas) == 0 {
		return nil, errors.New("openapi parser: document does not define component schemas")
	}

	schemas := make(map[string]pkgopenapi.Schema, len(root.Components.Schemas))
	for name, ref := range root.Components.Schemas {
		if ref == nil {
			continue
		}
		schemas[name] = convertSchema(ref, 0)
	}
	return schemas, nil
}
