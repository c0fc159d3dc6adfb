package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

// extensionNamespace groups text field hints on a schema, either as a nested
// map under the key itself or as x-textfield-<name> siblings.
const extensionNamespace = "x-textfield"

// maxDepth stops conversion of self-referencing component graphs.
const maxDepth = 8

func convertSchema(ref *openapi3.SchemaRef, depth int) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil || depth > maxDepth {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		Pattern:     src.Pattern,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property, depth+1)
		}
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	schema.Extensions = extractExtensions(src.Extensions)
	mergeAllOf(&schema, src.AllOf, depth)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}

// extractExtensions keeps only the x-textfield namespace. Prefixed keys are
// folded into the nested map so consumers read a single shape.
func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	hints := make(map[string]any)
	if nested, ok := raw[extensionNamespace].(map[string]any); ok {
		for key, value := range nested {
			hints[key] = value
		}
	}
	for key, value := range raw {
		if name, ok := strings.CutPrefix(key, extensionNamespace+"-"); ok && name != "" {
			hints[name] = value
		}
	}
	if len(hints) == 0 {
		return nil
	}
	return map[string]any{extensionNamespace: hints}
}

// mergeAllOf folds string constraints and hints declared on allOf members into
// target without overriding values set on the schema itself.
func mergeAllOf(target *pkgopenapi.Schema, refs openapi3.SchemaRefs, depth int) {
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		member := convertSchema(ref, depth+1)
		if target.Type == "" {
			target.Type = member.Type
		}
		if target.Format == "" {
			target.Format = member.Format
		}
		if target.Pattern == "" {
			target.Pattern = member.Pattern
		}
		if target.MinLength == nil {
			target.MinLength = member.MinLength
		}
		if target.MaxLength == nil {
			target.MaxLength = member.MaxLength
		}
		if hints, ok := member.Extensions[extensionNamespace].(map[string]any); ok {
			if target.Extensions == nil {
				target.Extensions = map[string]any{extensionNamespace: map[string]any{}}
			}
			own, _ := target.Extensions[extensionNamespace].(map[string]any)
			for key, value := range hints {
				if _, exists := own[key]; !exists {
					own[key] = value
				}
			}
		}
	}
}
