package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDocument reads a design-system document from disk, validates it, and
// returns the resulting model.
func LoadDocument(path string) (*designsystem.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatchyerrors.NewParseError(path, 0, err)
	}
	return ParseDocument(path, data)
}

// ParseDocument decodes and validates document bytes. path is only used in
// error messages.
func ParseDocument(path string, data []byte) (*designsystem.Document, error) {
	var doc designsystem.Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, swatchyerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// WriteDocument encodes doc as YAML at path, creating parent directories.
func WriteDocument(path string, doc *designsystem.Document) error {
	if err := ValidateDocument(doc); err != nil {
		return err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
