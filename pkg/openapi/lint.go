package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
)

// Violation reports an unsupported or malformed text field hint.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

var hintKinds = map[string]string{
	"label":       "string",
	"placeholder": "string",
	"inputType":   "string",
	"icon":        "string",
	"color":       "string",
	"dark":        "bool",
}

// HintKeys lists the supported x-textfield keys, sorted.
func HintKeys() []string {
	keys := make([]string, 0, len(hintKinds))
	for key := range hintKinds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lint checks the x-textfield hints of every schema and nested property.
// Violations are sorted by location.
func Lint(schemas map[string]Schema) []Violation {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Violation
	for _, name := range names {
		out = append(out, lintSchema([]string{"schema", name}, schemas[name])...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == out[j].Location {
			return out[i].Message < out[j].Message
		}
		return out[i].Location < out[j].Location
	})
	return out
}

func lintSchema(path []string, schema Schema) []Violation {
	var out []Violation
	if hints, ok := schema.Extensions[ExtensionNamespace].(map[string]any); ok {
		keys := make([]string, 0, len(hints))
		for key := range hints {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out = append(out, lintHint(appendPath(path, key), key, hints[key])...)
		}
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, lintSchema(appendPath(path, "properties."+key), schema.Properties[key])...)
	}
	return out
}

func lintHint(path []string, key string, value any) []Violation {
	location := strings.Join(path, " > ")
	kind, ok := hintKinds[key]
	if !ok {
		return []Violation{{
			Location: location,
			Message:  fmt.Sprintf("unsupported %s key %q (supported: %s)", ExtensionNamespace, key, strings.Join(HintKeys(), ", ")),
		}}
	}

	switch kind {
	case "bool":
		if _, ok := value.(bool); !ok {
			return []Violation{{Location: location, Message: fmt.Sprintf("value for %q must be a boolean (got %T)", key, value)}}
		}
		return nil
	}

	text, ok := value.(string)
	if !ok {
		return []Violation{{Location: location, Message: fmt.Sprintf("value for %q must be a string (got %T)", key, value)}}
	}
	switch key {
	case "inputType":
		if _, err := field.ParseInputKind(text); err != nil {
			return []Violation{{Location: location, Message: err.Error()}}
		}
	case "icon":
		if strings.TrimSpace(text) != "" && fieldconfig.SanitizeIcon(text) == "" {
			return []Violation{{Location: location, Message: "icon markup is removed by the sanitizer"}}
		}
	}
	return nil
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}
