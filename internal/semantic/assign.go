// Package semantic picks text and border tokens that read well on a chosen
// background.
package semantic

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
)

const (
	// TextContrast is the WCAG AA ratio for body text.
	TextContrast = 4.5
	// BorderContrast is the minimum ratio for a visible border.
	BorderContrast = 2.5
	// NeutralSaturation bounds the center-tint saturation of a text palette.
	NeutralSaturation = 0.25
)

// Request carries the inputs of Assign.
type Request struct {
	BackgroundToken string
	// BackgroundColor is the resolved color of BackgroundToken. When empty it
	// is resolved from Palettes.
	BackgroundColor string
	Palettes        []designsystem.Palette
}

// Assign fills the semantic tokens for a background. When no palette can
// serve as text palette only the background is recorded.
func Assign(req Request) (designsystem.SemanticTokens, error) {
	tokens := designsystem.SemanticTokens{Background: req.BackgroundToken}

	bgValue := req.BackgroundColor
	if bgValue == "" {
		resolved, err := designsystem.ResolveColor(req.Palettes, req.BackgroundToken)
		if err != nil {
			return tokens, fmt.Errorf("background: %w", err)
		}
		bgValue = resolved
	}
	background, _, err := color.Parse(bgValue)
	if err != nil {
		return tokens, fmt.Errorf("background: %w", err)
	}

	index, err := SelectTextPalette(req.Palettes, req.BackgroundToken)
	if err != nil {
		return tokens, err
	}
	if index < 0 {
		return tokens, nil
	}
	palette := req.Palettes[index]

	contrasts, err := tintContrasts(palette, background)
	if err != nil {
		return tokens, err
	}

	light := firstAbove(contrasts, TextContrast)
	dark := argMax(contrasts)
	border := firstAbove(contrasts, BorderContrast)

	lightContrast := contrasts[dark]
	if light >= 0 {
		lightContrast = contrasts[light]
		tokens.TextLight = designsystem.TokenName(palette.Name, palette.Tints[light].Label)
	}
	darkContrast := contrasts[dark]
	target := lightContrast + (darkContrast-lightContrast)/2
	middle := closestTo(contrasts, target)

	tokens.TextDark = designsystem.TokenName(palette.Name, palette.Tints[dark].Label)
	tokens.TextDefault = designsystem.TokenName(palette.Name, palette.Tints[middle].Label)
	if border >= 0 {
		tokens.Border = designsystem.TokenName(palette.Name, palette.Tints[border].Label)
	}

	return tokens, nil
}

// SelectTextPalette returns the index of the palette used for text, or -1.
// Among palettes whose center tint is near-neutral the most saturated one
// wins, earliest first on ties. Otherwise the palette owning the background
// token is used.
func SelectTextPalette(palettes []designsystem.Palette, backgroundToken string) (int, error) {
	best := -1
	bestSaturation := 0.0
	for i, palette := range palettes {
		if len(palette.Tints) == 0 {
			continue
		}
		center := palette.Tints[designsystem.CenterIndexOf(len(palette.Tints))]
		hsl, err := color.ToOKHSL(center.Color)
		if err != nil {
			return -1, fmt.Errorf("palette %q tint %q: %w", palette.Name, center.Label, err)
		}
		if hsl.S >= NeutralSaturation {
			continue
		}
		if best < 0 || hsl.S > bestSaturation {
			best = i
			bestSaturation = hsl.S
		}
	}
	if best >= 0 {
		return best, nil
	}

	for i, palette := range palettes {
		if len(palette.Tints) > 0 && designsystem.PaletteContains(palette, backgroundToken) {
			return i, nil
		}
	}
	return -1, nil
}

func tintContrasts(palette designsystem.Palette, background colorful.Color) ([]float64, error) {
	out := make([]float64, len(palette.Tints))
	for i, tint := range palette.Tints {
		c, _, err := color.Parse(tint.Color)
		if err != nil {
			return nil, fmt.Errorf("palette %q tint %q: %w", palette.Name, tint.Label, err)
		}
		out[i] = color.Contrast(c, background)
	}
	return out, nil
}

func firstAbove(values []float64, threshold float64) int {
	for i, v := range values {
		if v > threshold {
			return i
		}
	}
	return -1
}

func argMax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func closestTo(values []float64, target float64) int {
	best := 0
	for i, v := range values {
		if math.Abs(v-target) < math.Abs(values[best]-target) {
			best = i
		}
	}
	return best
}
