package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/shadow"
)

const cssIndent = "  "

// CSS renders custom properties: palettes, independent colors, shadows and
// semantic aliases under :root, then one [data-theme] block per other theme.
func CSS(doc *designsystem.Document, sets []ThemeSet) (string, error) {
	fingerprint, err := Fingerprint(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "/* %s: generated by swatchy, fingerprint %s. Do not edit. */\n", doc.Metadata.Name, fingerprint)

	for i, set := range sets {
		if i > 0 {
			sb.WriteString("\n")
		}
		if set.Main {
			sb.WriteString(":root {\n")
		} else {
			fmt.Fprintf(&sb, "[data-theme=%q] {\n", set.Name)
		}

		if err := writeColors(&sb, set); err != nil {
			return "", err
		}

		if set.Main {
			if err := writeShadows(&sb, doc.Shadows); err != nil {
				return "", err
			}
			for _, role := range doc.Semantic.Roles() {
				if role.Token == "" {
					continue
				}
				writeProperty(&sb, "semantic-"+role.Role, "var(--"+role.Token+")")
			}
		}

		sb.WriteString("}\n")
	}

	return sb.String(), nil
}

func writeColors(sb *strings.Builder, set ThemeSet) error {
	for _, palette := range set.Palettes {
		for _, tint := range palette.Tints {
			hex, err := color.Normalize(tint.Color)
			if err != nil {
				return fmt.Errorf("theme %q palette %q: %w", set.Name, palette.Name, err)
			}
			writeProperty(sb, designsystem.TokenName(palette.Name, tint.Label), hex)
		}
	}

	if set.Independent.White != "" {
		hex, err := color.Normalize(set.Independent.White)
		if err != nil {
			return fmt.Errorf("theme %q white: %w", set.Name, err)
		}
		writeProperty(sb, "white", hex)
	}
	for _, tint := range set.Independent.Colors {
		hex, err := color.Normalize(tint.Color)
		if err != nil {
			return fmt.Errorf("theme %q color %q: %w", set.Name, tint.Label, err)
		}
		writeProperty(sb, "color-"+tint.Label, hex)
	}
	return nil
}

func writeShadows(sb *strings.Builder, shadows []designsystem.ShadowSource) error {
	for _, src := range shadows {
		layers, err := shadow.ParseComposite(src.Value)
		if err != nil {
			return fmt.Errorf("shadow %q: %w", src.Name, err)
		}
		value, err := shadow.SerializeComposite(layers)
		if err != nil {
			return fmt.Errorf("shadow %q: %w", src.Name, err)
		}
		writeProperty(sb, "shadow-"+src.Name, value)
	}
	return nil
}

func writeProperty(sb *strings.Builder, name, value string) {
	sb.WriteString(cssIndent)
	sb.WriteString("--")
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString(";\n")
}
