package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/export"
)

func fixture() (*designsystem.Document, []export.ThemeSet) {
	doc := &designsystem.Document{
		Version:  "1.0.0",
		Metadata: designsystem.Metadata{Name: "Acme"},
		Palettes: []designsystem.Palette{
			{Name: "gray", Tints: []designsystem.Tint{{Label: "50", Color: "#fafafa"}, {Label: "900", Color: "#18181b"}}},
			{Name: "blue", Tints: []designsystem.Tint{{Label: "50", Color: "#eff6ff"}, {Label: "900", Color: "#1e3a8a"}}},
		},
		Semantic: designsystem.SemanticTokens{TextDefault: "palette-gray-900"},
	}
	sets := []export.ThemeSet{
		{Name: "main-palettes", Background: "#ffffff", Main: true, Palettes: doc.Palettes},
		{Name: "night-mode", Background: "#000000", Palettes: doc.Palettes[:1]},
	}
	return doc, sets
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelStartsOnMainTheme(t *testing.T) {
	t.Parallel()

	m := NewModel(fixture())
	set, ok := m.ActiveTheme()
	require.True(t, ok)
	require.True(t, set.Main)
	require.Equal(t, 0, m.ActivePalette())
	require.Nil(t, m.Init())
}

func TestUpdateNavigatesThemesAndPalettes(t *testing.T) {
	t.Parallel()

	m := NewModel(fixture())

	m, _ = update(t, m, runes("j"))
	require.Equal(t, 1, m.ActivePalette())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	set, _ := m.ActiveTheme()
	require.Equal(t, "night-mode", set.Name)
	require.Equal(t, 0, m.ActivePalette(), "cursor clamps to the smaller theme")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	set, _ = m.ActiveTheme()
	require.Equal(t, "main-palettes", set.Name)

	m, _ = update(t, m, runes("k"))
	require.Equal(t, 1, m.ActivePalette(), "palette cursor wraps")
}

func TestUpdateQuit(t *testing.T) {
	t.Parallel()

	m, cmd := update(t, NewModel(fixture()), runes("q"))
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	require.Empty(t, m.View())
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m, cmd := update(t, NewModel(fixture()), tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Nil(t, cmd)
	require.Equal(t, 100, m.width)
}

func TestViewShowsThemeContent(t *testing.T) {
	t.Parallel()

	out := NewModel(fixture()).View()
	require.Contains(t, out, "Swatchy • Acme")
	require.Contains(t, out, "Main Palettes")
	require.Contains(t, out, "Night Mode")
	require.Contains(t, out, "gray")
	require.Contains(t, out, "Contrast")
	require.Contains(t, out, "palette-gray-900")
}

func TestViewToggleHelp(t *testing.T) {
	t.Parallel()

	m := NewModel(fixture())
	short := m.View()
	m, _ = update(t, m, runes("?"))
	full := m.View()
	require.Contains(t, full, "previous palette")
	require.NotContains(t, short, "previous palette")
}

func TestViewWithoutThemes(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("j"))
	require.Contains(t, m.View(), "no themes to display")
}

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	out := RenderPlain(fixture())
	require.True(t, strings.HasPrefix(out, "Acme\n"))
	require.Contains(t, out, "theme main-palettes (background #ffffff)")
	require.Contains(t, out, "  gray: 50 #fafafa, 900 #18181b")
	require.Contains(t, out, "  text-default -> palette-gray-900")
	require.Contains(t, out, "theme night-mode (background #000000)")
	require.Equal(t, 1, strings.Count(out, "text-default"))
}
