package openapi

import "context"

// Parser extracts the component schemas of a document, keyed by name.
type Parser interface {
	Schemas(ctx context.Context, doc Document) (map[string]Schema, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ValidateDocument runs the kin-openapi document validator before schemas
	// are extracted.
	ValidateDocument bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithValidation toggles document validation.
func WithValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ValidateDocument = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{ValidateDocument: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Construction helpers live in the top-level textfield package to avoid import cycles.
