package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
)

func validateConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", abs)
	}

	return abs, nil
}

func loadDocument(path string) (*designsystem.Document, error) {
	abs, err := validateConfigPath(path)
	if err != nil {
		return nil, newCommandError("load document", path, err, "create one with 'swatchy init <path>'")
	}
	doc, err := config.LoadDocument(abs)
	if err != nil {
		return nil, newCommandError("load document", abs, err, "fix the reported field and try again")
	}
	return doc, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
