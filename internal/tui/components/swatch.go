package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
)

const swatchWidth = 6

// Swatch renders a block filled with hex and labelled with a readable
// foreground.
func Swatch(hex, label string) string {
	return swatchStyle(hex).Render(label)
}

func swatchStyle(hex string) lipgloss.Style {
	style := lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center)
	c, _, err := color.Parse(hex)
	if err != nil {
		return style
	}
	fg := "#000000"
	if color.Contrast(c, white) > color.Contrast(c, black) {
		fg = "#ffffff"
	}
	return style.Background(lipgloss.Color(c.Clamped().Hex())).Foreground(lipgloss.Color(fg))
}

var (
	white, _, _ = color.Parse("#ffffff")
	black, _, _ = color.Parse("#000000")
)

// PaletteRow renders a palette name followed by its tints.
func PaletteRow(palette designsystem.Palette, nameWidth int) string {
	cells := make([]string, 0, len(palette.Tints)+1)
	cells = append(cells, lipgloss.NewStyle().Width(nameWidth).Render(palette.Name))
	for _, tint := range palette.Tints {
		cells = append(cells, Swatch(tint.Color, tint.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Tabs renders names as a tab bar with the active one highlighted.
func Tabs(names []string, active int) string {
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString(inactiveTab.Render("│"))
		}
		if i == active {
			sb.WriteString(activeTab.Render(name))
		} else {
			sb.WriteString(inactiveTab.Render(name))
		}
	}
	return sb.String()
}

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1).Foreground(lipgloss.Color("205"))
	inactiveTab = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
)
