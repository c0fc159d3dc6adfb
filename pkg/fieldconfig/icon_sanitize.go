package fieldconfig

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// SanitizeIcon returns icon markup safe to inline. Identifiers and URLs pass
// through trimmed; inline markup is reduced to a strict SVG subset and
// dropped entirely when nothing survives.
func SanitizeIcon(raw string) string {
	return normaliseIcon(raw)
}

// IsInlineIcon reports whether icon holds markup rather than an identifier.
func IsInlineIcon(icon string) bool {
	return strings.HasPrefix(strings.TrimSpace(icon), "<")
}

func normaliseIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !IsInlineIcon(trimmed) {
		return trimmed
	}
	cleaned := strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
	if !strings.HasPrefix(cleaned, "<svg") {
		return ""
	}
	return cleaned
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("fill", "stroke", "transform").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
