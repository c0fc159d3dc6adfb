package fieldconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML field files. When
// fsys is nil or no files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldconfig: read %s: %w", path, err)
		}
		return store.addDocument(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadFile parses a single JSON/YAML file from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: read %s: %w", path, err)
	}
	store := &Store{fields: make(map[string]FieldConfig)}
	if err := store.addDocument(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a document held in memory. source names it in errors.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig)}
	if err := store.addDocument(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Marshal renders the store as a YAML document that LoadFS accepts.
func (s *Store) Marshal() ([]byte, error) {
	doc := documentFile{Fields: make(map[string]FieldConfig)}
	for _, name := range s.Names() {
		doc.Fields[name] = s.fields[name]
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: marshal: %w", err)
	}
	return out, nil
}

type documentFile struct {
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func (s *Store) addDocument(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for key, raw := range doc.Fields {
		cfg := normaliseField(raw)
		cfg.Name = strings.TrimSpace(key)
		cfg.Source = source
		if err := s.add(cfg); err != nil {
			return err
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldconfig: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("fieldconfig: parse %s: invalid JSON or YAML", source)
}

func normaliseField(cfg FieldConfig) FieldConfig {
	out := cfg
	out.Icon = normaliseIcon(cfg.Icon)
	out.InputType = strings.TrimSpace(cfg.InputType)
	out.Color = strings.TrimSpace(cfg.Color)
	if len(cfg.Style) > 0 {
		out.Style = make(map[string]any, len(cfg.Style))
		for k, v := range cfg.Style {
			out.Style[k] = v
		}
	}
	return out
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
