package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/export"
	"github.com/alexisbeaulieu97/swatchy/internal/tui/components"
)

var titleCaser = cases.Title(language.English)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("Swatchy • %s", m.title())))

	set, ok := m.ActiveTheme()
	if !ok {
		sections = append(sections, emptyStyle.Render("no themes to display"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, components.Tabs(m.themeNames(), m.theme))
	sections = append(sections, sectionStyle.Render("Background"),
		lipgloss.JoinHorizontal(lipgloss.Top, components.Swatch(set.Background, ""), " ", mutedStyle.Render(set.Background)))

	sections = append(sections, sectionStyle.Render("Palettes"))
	if len(set.Palettes) == 0 {
		sections = append(sections, emptyStyle.Render("no palettes"))
	} else {
		sections = append(sections, m.renderPalettes(set))
		sections = append(sections, sectionStyle.Render("Contrast"), m.renderContrast(set))
	}

	if set.Main {
		if roles := renderSemantic(set, m.semantic); roles != "" {
			sections = append(sections, sectionStyle.Render("Semantic"), roles)
		}
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	if strings.TrimSpace(m.name) != "" {
		return m.name
	}
	return "Design system"
}

func (m Model) themeNames() []string {
	names := make([]string, len(m.sets))
	for i, set := range m.sets {
		names[i] = titleCaser.String(strings.ReplaceAll(set.Name, "-", " "))
	}
	return names
}

func (m Model) renderPalettes(set export.ThemeSet) string {
	width := 0
	for _, palette := range set.Palettes {
		width = max(width, lipgloss.Width(palette.Name))
	}

	rows := make([]string, len(set.Palettes))
	for i, palette := range set.Palettes {
		cursor := "  "
		if i == m.palette {
			cursor = cursorStyle.Render("› ")
		}
		rows[i] = cursor + components.PaletteRow(palette, width+2)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderContrast(set export.ThemeSet) string {
	if m.palette >= len(set.Palettes) {
		return ""
	}
	bg, _, err := color.Parse(set.Background)
	if err != nil {
		return emptyStyle.Render(err.Error())
	}

	palette := set.Palettes[m.palette]
	lines := make([]string, 0, len(palette.Tints))
	for _, tint := range palette.Tints {
		c, _, err := color.Parse(tint.Color)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%-6s %s", tint.Label, emptyStyle.Render("invalid color")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-6s %s", tint.Label, m.meter.View(color.Contrast(c, bg))))
	}
	return strings.Join(lines, "\n")
}

func renderSemantic(set export.ThemeSet, tokens designsystem.SemanticTokens) string {
	var lines []string
	for _, role := range tokens.Roles() {
		if role.Token == "" {
			continue
		}
		hex, err := designsystem.ResolveColor(set.Palettes, role.Token)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%-13s %s", role.Role, emptyStyle.Render(role.Token)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-13s %s %s", role.Role, components.Swatch(hex, ""), mutedStyle.Render(role.Token)))
	}
	return strings.Join(lines, "\n")
}
