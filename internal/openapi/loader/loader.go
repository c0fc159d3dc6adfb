package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
)

// Loader reads OpenAPI documents from disk or from the configured fs.FS.
// Construction helpers live in the top-level textfield package.
type Loader struct {
	files fs.FS
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	return &Loader{files: options.FileSystem}
}

// Load reads src and wraps the payload in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	location := src.Location()
	if location == "" {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s source has no location", src.Kind())
	}

	data, err := l.read(src.Kind(), location)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	return pkgopenapi.NewDocument(src, data)
}

func (l *Loader) read(kind pkgopenapi.SourceKind, location string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch kind {
	case pkgopenapi.SourceKindFile:
		data, err = os.ReadFile(location)
	case pkgopenapi.SourceKindFS:
		if l.files == nil {
			return nil, errors.New("openapi loader: filesystem is not configured")
		}
		data, err = fs.ReadFile(l.files, location)
	default:
		return nil, fmt.Errorf("openapi loader: unsupported source kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", location, err)
	}
	return data, nil
}
