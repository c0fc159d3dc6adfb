package gotemplate

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Filter is a template filter over plain Go values.
type Filter func(input any, param any) (any, error)

var builtinOnce sync.Once

// RegisterFilter adds a filter. pongo2 filters are process wide, so a name
// can be registered only once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return fmt.Errorf("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

func registerBuiltinFilters() {
	builtinOnce.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"trim":        filterTrim,
			"inlinestyle": filterInlineStyle,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func filterTrim(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterInlineStyle renders a map as CSS declarations sorted by property.
// Declarations containing characters that could leave the attribute are
// dropped.
func filterInlineStyle(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	styles, ok := in.Interface().(map[string]any)
	if !ok || len(styles) == 0 {
		return pongo2.AsValue(""), nil
	}
	props := make([]string, 0, len(styles))
	for prop := range styles {
		props = append(props, prop)
	}
	sort.Strings(props)

	decls := make([]string, 0, len(props))
	for _, prop := range props {
		value := strings.TrimSpace(fmt.Sprint(styles[prop]))
		name := strings.TrimSpace(prop)
		if name == "" || value == "" || strings.ContainsAny(name+value, `;"<>{}`) {
			continue
		}
		decls = append(decls, name+": "+value+";")
	}
	return pongo2.AsValue(strings.Join(decls, " ")), nil
}
