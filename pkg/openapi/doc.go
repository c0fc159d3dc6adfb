// Package openapi exposes the contracts used to derive text field
// configurations from OpenAPI component schemas. Loading and parsing live
// under internal/openapi so kin-openapi types never leak to callers; the
// Adapter in this package maps the neutral Schema wrapper onto
// fieldconfig.FieldConfig values.
package openapi
