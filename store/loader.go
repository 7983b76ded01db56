package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/mapnav/core"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Decode reads every map document in r. YAML streams may hold several
// documents; JSON holds exactly one.
func Decode(r io.Reader, format Format) ([]core.MapDocument, error) {
	var docs []core.MapDocument
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		for {
			var doc core.MapDocument
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("store: decode yaml: %w", err)
			}
			docs = append(docs, doc)
		}
	case FormatJSON:
		var doc core.MapDocument
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("store: decode json: %w", err)
		}
		docs = append(docs, doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return docs, nil
}

// Validate checks doc against its struct tags. Gateway nodes with an
// incomplete target pass; core.NewMap demotes them to plain nodes.
func Validate(doc *core.MapDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: map %q: %v", ErrInvalidDocument, doc.ID, formatValidationError(err))
	}
	return nil
}

// Build validates doc and turns it into a *core.Map.
func Build(doc core.MapDocument) (*core.Map, error) {
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	m, err := core.NewMap(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return m, nil
}

// LoadFile reads, validates and builds every map in the file at path.
func LoadFile(path string) ([]*core.Map, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	docs, err := Decode(bytes.NewReader(raw), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]*core.Map, 0, len(docs))
	for _, doc := range docs {
		m, err := Build(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// LoadDir loads every .yaml, .yml and .json file directly inside dir, in
// file-name order. Other files are ignored. Map ids must be unique across
// the directory.
func LoadDir(dir string) ([]*core.Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("store: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seen := make(map[string]string)
	var out []*core.Map
	for _, name := range names {
		path := filepath.Join(dir, name)
		maps, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, m := range maps {
			if prev, dup := seen[m.ID()]; dup {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateMap, m.ID(), prev, path)
			}
			seen[m.ID()] = path
			out = append(out, m)
		}
	}
	return out, nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %q", field, e.Param(), e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
