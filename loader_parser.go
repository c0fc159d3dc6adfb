package textfield

import (
	internalLoader "github.com/goliatone/go-textfield/internal/openapi/loader"
	internalParser "github.com/goliatone/go-textfield/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewOpenAPIAdapter wires the default loader and parser into an adapter that
// maps component schemas to field configurations.
func NewOpenAPIAdapter(loaderOptions []pkgopenapi.LoaderOption, parserOptions ...pkgopenapi.ParserOption) *pkgopenapi.Adapter {
	return pkgopenapi.NewAdapter(NewLoader(loaderOptions...), NewParser(parserOptions...))
}
