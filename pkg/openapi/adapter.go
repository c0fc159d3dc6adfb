package openapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sort"
	"strings"
	"unicode"

	"github.com/goliatone/go-textfield/pkg/fieldconfig"
	"github.com/goliatone/go-textfield/pkg/validation"
)

// ExtensionNamespace is the schema extension carrying text field hints.
const ExtensionNamespace = "x-textfield"

// Adapter wraps the loader/parser flow and maps component schemas to field
// configurations.
type Adapter struct {
	loader Loader
	parser Parser
}

// NewAdapter constructs an OpenAPI adapter with the supplied loader and parser.
func NewAdapter(loader Loader, parser Parser) *Adapter {
	return &Adapter{loader: loader, parser: parser}
}

// Fields loads src, locates the component schema called schemaName and
// returns a store with one field per scalar property.
func (a *Adapter) Fields(ctx context.Context, src Source, schemaName string) (*fieldconfig.Store, error) {
	if a == nil || a.loader == nil || a.parser == nil {
		return nil, errors.New("openapi: adapter requires a loader and a parser")
	}
	doc, err := a.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return a.FieldsFromDocument(ctx, doc, schemaName)
}

// FieldsFromDocument is Fields for an already loaded document.
func (a *Adapter) FieldsFromDocument(ctx context.Context, doc Document, schemaName string) (*fieldconfig.Store, error) {
	if a == nil || a.parser == nil {
		return nil, errors.New("openapi: adapter requires a parser")
	}
	schemas, err := a.parser.Schemas(ctx, doc)
	if err != nil {
		return nil, err
	}
	schema, ok := schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q not found in %s", schemaName, doc.Location())
	}

	configs, err := FieldsFromSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("openapi: schema %q: %w", schemaName, err)
	}
	for i := range configs {
		configs[i].Source = doc.Location()
	}
	return fieldconfig.NewStore(configs...)
}

// FieldsFromSchema maps the string, number and integer properties of an
// object schema, sorted by name. Other properties are skipped.
func FieldsFromSchema(schema Schema) ([]fieldconfig.FieldConfig, error) {
	if len(schema.Properties) == 0 {
		return nil, errors.New("schema has no properties")
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]fieldconfig.FieldConfig, 0, len(names))
	for _, name := range names {
		prop := schema.Properties[name]
		if !isScalar(prop.Type) {
			continue
		}
		configs = append(configs, fieldFromProperty(name, prop, schema.IsRequired(name)))
	}
	if len(configs) == 0 {
		return nil, errors.New("schema has no scalar properties")
	}
	return configs, nil
}

func isScalar(kind string) bool {
	switch kind {
	case "string", "number", "integer":
		return true
	default:
		return false
	}
}

func fieldFromProperty(name string, prop Schema, required bool) fieldconfig.FieldConfig {
	cfg := fieldconfig.FieldConfig{
		Name:        name,
		Label:       prop.Title,
		Placeholder: prop.Description,
		InputType:   inputTypeFor(prop),
		Validation: validation.Rules{
			Required:  required,
			MinLength: prop.MinLength,
			MaxLength: prop.MaxLength,
			Pattern:   prop.Pattern,
			Format:    formatFor(prop),
		},
	}
	if cfg.Label == "" {
		cfg.Label = humanize(name)
	}
	if prop.Default != nil {
		cfg.Value = defaultValue(prop.Default)
	}

	hints, _ := prop.Extensions[ExtensionNamespace].(map[string]any)
	if value, ok := stringHint(hints, "label"); ok {
		cfg.Label = value
	}
	if value, ok := stringHint(hints, "placeholder"); ok {
		cfg.Placeholder = value
	}
	if value, ok := stringHint(hints, "inputType"); ok {
		cfg.InputType = value
	}
	if value, ok := stringHint(hints, "icon"); ok {
		cfg.Icon = fieldconfig.SanitizeIcon(value)
	}
	if value, ok := stringHint(hints, "color"); ok {
		cfg.Color = value
	}
	if dark, ok := hints["dark"].(bool); ok {
		cfg.Dark = dark
	}
	return cfg
}

func inputTypeFor(prop Schema) string {
	switch {
	case prop.Type == "number" || prop.Type == "integer":
		return "number"
	case prop.Format == "email":
		return "email"
	case prop.Format == "password":
		return "password"
	default:
		return "text"
	}
}

// defaultValue renders numbers without exponents so 1e21 stays numeric text.
func defaultValue(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func formatFor(prop Schema) string {
	switch {
	case prop.Type == "number" || prop.Type == "integer":
		return "number"
	case prop.Format == "email":
		return "email"
	default:
		return ""
	}
}

func stringHint(hints map[string]any, key string) (string, bool) {
	value, ok := hints[key].(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// humanize turns firstName or first_name into "First name".
func humanize(name string) string {
	var b strings.Builder
	prev := rune(0)
	for i, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			if b.Len() > 0 && prev != ' ' {
				b.WriteRune(' ')
				prev = ' '
			}
			continue
		case unicode.IsUpper(r) && i > 0 && prev != ' ':
			b.WriteRune(' ')
		}
		if b.Len() == 0 {
			r = unicode.ToUpper(r)
		} else {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.TrimSpace(b.String())
}
