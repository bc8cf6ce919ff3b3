package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bewertigo/bewertigo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an audit input document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Unknown extensions are JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FileLoader implements domain.InputLoader for JSON and YAML files.
// Unknown fields are rejected and the decoded input is validated.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads and validates the audit input at path.
func (l *FileLoader) Load(path string) (domain.AuditInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AuditInput{}, fmt.Errorf("reading %s: %w", path, err)
	}
	in, err := Decode(bytes.NewReader(data), FormatFor(path))
	if err != nil {
		return domain.AuditInput{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return in, nil
}

// Decode parses and validates one audit input document.
func Decode(r io.Reader, format Format) (domain.AuditInput, error) {
	var in domain.AuditInput
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&in); err != nil {
			if errors.Is(err, io.EOF) {
				return domain.AuditInput{}, fmt.Errorf("parsing yaml: empty document")
			}
			return domain.AuditInput{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return domain.AuditInput{}, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return domain.AuditInput{}, fmt.Errorf("unsupported input format %q", format)
	}

	if err := in.Validate(); err != nil {
		return domain.AuditInput{}, err
	}
	return in, nil
}
