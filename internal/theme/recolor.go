// Package theme derives palettes for a new background from palettes designed
// against a default background.
package theme

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/interpolation"
)

// RecolorRequest carries the inputs of RecolorPalettes.
type RecolorRequest struct {
	Palettes          []designsystem.Palette
	DefaultBackground string
	NewBackground     string
}

// IsReversed reports whether moving between the two backgrounds crosses the
// light/dark boundary.
func IsReversed(defaultBackground, newBackground color.OKHSL) bool {
	return defaultBackground.IsLight() != newBackground.IsLight()
}

// RecolorPalettes returns palettes recolored from DefaultBackground to
// NewBackground. Names and labels are preserved; only colors change. When the
// move crosses the light/dark boundary tint colors are reversed inside each
// palette while labels stay in place.
func RecolorPalettes(req RecolorRequest) ([]designsystem.Palette, error) {
	oldBg, err := color.ToOKHSL(req.DefaultBackground)
	if err != nil {
		return nil, fmt.Errorf("default background: %w", err)
	}
	newBg, err := color.ToOKHSL(req.NewBackground)
	if err != nil {
		return nil, fmt.Errorf("new background: %w", err)
	}

	reversed := IsReversed(oldBg, newBg)
	center := oldBg
	if reversed {
		center, err = reversedCenter(req.Palettes, req.DefaultBackground, oldBg)
		if err != nil {
			return nil, err
		}
	}

	out := make([]designsystem.Palette, len(req.Palettes))
	for pi, palette := range req.Palettes {
		tints := make([]designsystem.Tint, len(palette.Tints))
		for ti, tint := range palette.Tints {
			source := tint.Color
			if reversed {
				source = palette.Tints[len(palette.Tints)-1-ti].Color
			}

			value, err := color.ToOKHSL(source)
			if err != nil {
				return nil, fmt.Errorf("palette %q tint %q: %w", palette.Name, tint.Label, err)
			}

			tints[ti] = designsystem.Tint{
				Label: tint.Label,
				Color: Recenter(value, center, newBg).Hex(),
			}
		}
		out[pi] = designsystem.Palette{Name: palette.Name, Tints: tints}
	}

	return out, nil
}

// reversedCenter mirrors the default background onto the opposite end of the
// anchor palette: the palette whose first tint is nearest the background.
// The first tint serves as the old center and the last tint as the new one
// whatever the palette's ordering.
func reversedCenter(palettes []designsystem.Palette, rawBackground string, background color.OKHSL) (color.OKHSL, error) {
	anchor := -1
	best := 0.0
	for i, palette := range palettes {
		if len(palette.Tints) == 0 {
			continue
		}
		distance, err := color.DeltaE76(rawBackground, palette.Tints[0].Color)
		if err != nil {
			return color.OKHSL{}, fmt.Errorf("palette %q: %w", palette.Name, err)
		}
		if anchor < 0 || distance < best {
			anchor = i
			best = distance
		}
	}
	if anchor < 0 {
		return background, nil
	}

	tints := palettes[anchor].Tints
	paletteMin, err := color.ToOKHSL(tints[0].Color)
	if err != nil {
		return color.OKHSL{}, err
	}
	paletteMax, err := color.ToOKHSL(tints[len(tints)-1].Color)
	if err != nil {
		return color.OKHSL{}, err
	}

	return Recenter(background, paletteMin, paletteMax), nil
}

// Recenter moves value so it keeps its relative position to center around
// newCenter. Hue moves on the circle; saturation and lightness move linearly
// inside [0, 1]. The saturation bound widens to cover any input that sits
// past full saturation at the gamut edge.
func Recenter(value, center, newCenter color.OKHSL) color.OKHSL {
	maxS := math.Max(1, math.Max(value.S, math.Max(center.S, newCenter.S)))

	return color.OKHSL{
		H: interpolation.InterpolateHueRelative(interpolation.HueParams{
			InitialCenter: center.H,
			InitialValue:  value.H,
			NewCenter:     newCenter.H,
		}),
		S: interpolation.ComputeValueByCenter(interpolation.CenterParams{
			Min:           0,
			Max:           maxS,
			InitialCenter: center.S,
			InitialValue:  value.S,
			NewCenter:     newCenter.S,
		}),
		L: interpolation.ComputeValueByCenter(interpolation.CenterParams{
			Min:           0,
			Max:           1,
			InitialCenter: center.L,
			InitialValue:  value.L,
			NewCenter:     newCenter.L,
		}),
	}
}

// RecolorIndependentColors recolors colors that live outside palettes. They
// are always measured against the raw default background; reversal does not
// apply to them.
func RecolorIndependentColors(colors designsystem.IndependentColors, defaultBackground, newBackground string) (designsystem.IndependentColors, error) {
	oldBg, err := color.ToOKHSL(defaultBackground)
	if err != nil {
		return designsystem.IndependentColors{}, fmt.Errorf("default background: %w", err)
	}
	newBg, err := color.ToOKHSL(newBackground)
	if err != nil {
		return designsystem.IndependentColors{}, fmt.Errorf("new background: %w", err)
	}

	recolor := func(value string) (string, error) {
		c, err := color.ToOKHSL(value)
		if err != nil {
			return "", err
		}
		return Recenter(c, oldBg, newBg).Hex(), nil
	}

	var out designsystem.IndependentColors
	if colors.White != "" {
		if out.White, err = recolor(colors.White); err != nil {
			return designsystem.IndependentColors{}, fmt.Errorf("white: %w", err)
		}
	}
	if len(colors.Colors) > 0 {
		out.Colors = make([]designsystem.Tint, len(colors.Colors))
		for i, tint := range colors.Colors {
			recolored, err := recolor(tint.Color)
			if err != nil {
				return designsystem.IndependentColors{}, fmt.Errorf("independent color %q: %w", tint.Label, err)
			}
			out.Colors[i] = designsystem.Tint{Label: tint.Label, Color: recolored}
		}
	}

	return out, nil
}
