package gotemplate

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// toContext flattens data into plain maps and slices through its JSON form, so
// templates address struct fields by their json names. Top level functions
// pass through untouched.
func toContext(data any) (pongo2.Context, error) {
	ctx := pongo2.Context{}
	if data == nil {
		return ctx, nil
	}

	top, ok := data.(map[string]any)
	if !ok {
		if pc, isCtx := data.(pongo2.Context); isCtx {
			top, ok = map[string]any(pc), true
		}
	}
	if !ok {
		decoded, err := roundTrip(data)
		if err != nil {
			return nil, err
		}
		top, _ = decoded.(map[string]any)
	}

	for key, value := range top {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
			ctx[key] = value
			continue
		}
		decoded, err := roundTrip(value)
		if err != nil {
			return nil, err
		}
		ctx[key] = decoded
	}
	return ctx, nil
}

func roundTrip(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
