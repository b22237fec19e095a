package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/export"
	"github.com/alexisbeaulieu97/swatchy/internal/tui/components"
)

// Model contains the Bubbletea state for the theme browser.
type Model struct {
	name     string
	sets     []export.ThemeSet
	semantic designsystem.SemanticTokens

	theme   int
	palette int

	keys     KeyMap
	help     help.Model
	meter    components.ContrastMeter
	width    int
	quitting bool
}

// NewModel constructs a browser over the resolved themes of a document.
func NewModel(doc *designsystem.Document, sets []export.ThemeSet) Model {
	m := Model{
		sets:  sets,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		meter: components.NewContrastMeter(),
	}
	if doc != nil {
		m.name = doc.Metadata.Name
		m.semantic = doc.Semantic
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTheme returns the theme being displayed.
func (m Model) ActiveTheme() (export.ThemeSet, bool) {
	if m.theme < 0 || m.theme >= len(m.sets) {
		return export.ThemeSet{}, false
	}
	return m.sets[m.theme], true
}

// ActivePalette returns the index of the highlighted palette.
func (m Model) ActivePalette() int {
	return m.palette
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) paletteCount() int {
	set, ok := m.ActiveTheme()
	if !ok {
		return 0
	}
	return len(set.Palettes)
}

func (m *Model) moveTheme(delta int) {
	if len(m.sets) == 0 {
		return
	}
	m.theme = (m.theme + delta + len(m.sets)) % len(m.sets)
	if n := m.paletteCount(); m.palette >= n {
		m.palette = max(0, n-1)
	}
}

func (m *Model) movePalette(delta int) {
	n := m.paletteCount()
	if n == 0 {
		return
	}
	m.palette = (m.palette + delta + n) % n
}
