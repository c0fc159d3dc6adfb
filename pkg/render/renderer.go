package render

import (
	"context"
)

// Renderer converts a View into a byte representation (HTML, ANSI, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}
