package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Contrast ratios at which WCAG 2.1 grades change.
const (
	maxContrast   = 21.0
	gradeAAA      = 7.0
	gradeAA       = 4.5
	gradeAALarge  = 3.0
	contrastWidth = 24
)

// ContrastMeter renders a contrast ratio as a bar scaled to the 21:1 maximum.
type ContrastMeter struct {
	bar progress.Model
}

// NewContrastMeter creates a meter with a fixed width.
func NewContrastMeter() ContrastMeter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = contrastWidth
	return ContrastMeter{bar: bar}
}

// View renders the bar, the ratio and its grade.
func (c ContrastMeter) View(ratio float64) string {
	fill := math.Min(1, math.Max(0, (ratio-1)/(maxContrast-1)))
	label := lipgloss.NewStyle().Bold(true).Width(7).Render(fmt.Sprintf("%.2f", ratio))
	return lipgloss.JoinHorizontal(lipgloss.Left, c.bar.ViewAs(fill), " ", label, " ", Grade(ratio))
}

// Grade names the WCAG level a contrast ratio reaches.
func Grade(ratio float64) string {
	switch {
	case ratio >= gradeAAA:
		return "AAA"
	case ratio >= gradeAA:
		return "AA"
	case ratio >= gradeAALarge:
		return "AA large"
	default:
		return "fail"
	}
}
