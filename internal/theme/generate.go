package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/interpolation"
)

const (
	lightestTint = 0.97
	darkestTint  = 0.15
)

// GenerateRequest describes a palette derived from a single seed color.
type GenerateRequest struct {
	Seed   string
	Name   string
	Steps  int
	Naming designsystem.NamingMode
	// Taken lists palette names already in use; the generated name is made
	// unique against it.
	Taken []string
}

// GeneratePalette builds a light-to-dark palette keeping the seed's hue and
// saturation and spreading lightness evenly.
func GeneratePalette(req GenerateRequest) (designsystem.Palette, error) {
	if req.Steps < 1 {
		return designsystem.Palette{}, fmt.Errorf("steps must be at least 1, got %d", req.Steps)
	}
	seed, err := color.ToOKHSL(req.Seed)
	if err != nil {
		return designsystem.Palette{}, fmt.Errorf("seed: %w", err)
	}

	naming := req.Naming
	if naming == "" {
		naming = designsystem.NamingHundredsWithHalves
	}

	tints := make([]designsystem.Tint, req.Steps)
	for i := range tints {
		l := interpolation.LinearInterpolation(i, req.Steps, lightestTint, darkestTint)
		if req.Steps == 1 {
			l = seed.L
		}
		tints[i] = designsystem.Tint{
			Label: designsystem.TintName(i, req.Steps, naming, ""),
			Color: color.ToHex(seed.H, seed.S, l),
		}
	}

	return designsystem.Palette{
		Name:  designsystem.UniqueName(req.Taken, req.Name),
		Tints: tints,
	}, nil
}
