package openapi

import (
	"errors"
	"strconv"
	"strings"
)

// Source identifies where an OpenAPI document originated.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Schema is the subset of an OpenAPI schema object that text fields consume.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string
	Default     any
	Required    []string
	Properties  map[string]Schema
	MinLength   *int
	MaxLength   *int
	Pattern     string
	Extensions  map[string]any
}

// IsRequired reports whether property is listed in Required.
func (s Schema) IsRequired(property string) bool {
	for _, name := range s.Required {
		if name == property {
			return true
		}
	}
	return false
}

// DebugString summarises the schema for log lines.
func (s Schema) DebugString() string {
	parts := []string{"type=" + s.Type}
	if s.Ref != "" {
		parts = append(parts, "ref="+s.Ref)
	}
	if s.Format != "" {
		parts = append(parts, "format="+s.Format)
	}
	if s.MinLength != nil {
		parts = append(parts, "minLength="+strconv.Itoa(*s.MinLength))
	}
	if s.MaxLength != nil {
		parts = append(parts, "maxLength="+strconv.Itoa(*s.MaxLength))
	}
	if s.Pattern != "" {
		parts = append(parts, "pattern="+s.Pattern)
	}
	if len(s.Properties) > 0 {
		parts = append(parts, "properties="+strconv.Itoa(len(s.Properties)))
	}
	if _, ok := s.Extensions[ExtensionNamespace]; ok {
		parts = append(parts, "hints")
	}
	return strings.Join(parts, ",")
}
