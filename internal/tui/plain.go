package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/export"
)

// RenderPlain lists every theme without styling, for output that is not a
// terminal.
func RenderPlain(doc *designsystem.Document, sets []export.ThemeSet) string {
	var sb strings.Builder
	if doc != nil && doc.Metadata.Name != "" {
		fmt.Fprintf(&sb, "%s\n", doc.Metadata.Name)
	}

	for i, set := range sets {
		if i > 0 || sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "theme %s (background %s)\n", set.Name, set.Background)
		for _, palette := range set.Palettes {
			cells := make([]string, len(palette.Tints))
			for j, tint := range palette.Tints {
				cells[j] = tint.Label + " " + tint.Color
			}
			fmt.Fprintf(&sb, "  %s: %s\n", palette.Name, strings.Join(cells, ", "))
		}
		if set.Independent.White != "" {
			fmt.Fprintf(&sb, "  white: %s\n", set.Independent.White)
		}
		for _, tint := range set.Independent.Colors {
			fmt.Fprintf(&sb, "  color %s: %s\n", tint.Label, tint.Color)
		}
		if set.Main && doc != nil {
			for _, role := range doc.Semantic.Roles() {
				if role.Token != "" {
					fmt.Fprintf(&sb, "  %s -> %s\n", role.Role, role.Token)
				}
			}
		}
	}
	return sb.String()
}
