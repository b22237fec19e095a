package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func printYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return encoder.Close()
}
