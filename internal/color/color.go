// Package color adapts sRGB color strings to the OKHSL perceptual space and
// computes WCAG 2.1 contrast. All functions are pure and safe for concurrent use.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
)

// Parse reads a hex, rgb() or rgba() color. The alpha channel is returned
// separately and is 1 when the syntax carries none.
func Parse(value string) (colorful.Color, float64, error) {
	trimmed := strings.TrimSpace(value)

	if hexPattern.MatchString(trimmed) {
		c, err := colorful.Hex(strings.ToLower(trimmed))
		if err != nil {
			return colorful.Color{}, 0, invalidColor(value, err)
		}
		return c, 1, nil
	}

	matches := rgbPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return colorful.Color{}, 0, invalidColor(value, nil)
	}

	var channels [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil || n > 255 {
			return colorful.Color{}, 0, invalidColor(value, fmt.Errorf("channel %d out of range", i))
		}
		channels[i] = n
	}

	alpha := 1.0
	if matches[4] != "" {
		parsed, err := strconv.ParseFloat(matches[4], 64)
		if err != nil || parsed > 1 {
			return colorful.Color{}, 0, invalidColor(value, fmt.Errorf("alpha %q out of range", matches[4]))
		}
		alpha = parsed
	}

	return FromRGB255(channels[0], channels[1], channels[2]), alpha, nil
}

// FromRGB255 builds a color from 0-255 channels, clamping out-of-range values.
func FromRGB255(r, g, b int) colorful.Color {
	return colorful.Color{
		R: float64(clampChannel(r)) / 255,
		G: float64(clampChannel(g)) / 255,
		B: float64(clampChannel(b)) / 255,
	}
}

// Normalize returns the canonical lowercase #rrggbb form of a color string.
// Alpha is dropped.
func Normalize(value string) (string, error) {
	c, _, err := Parse(value)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// ToOKHSL converts a color string to OKHSL.
func ToOKHSL(value string) (OKHSL, error) {
	c, _, err := Parse(value)
	if err != nil {
		return OKHSL{}, err
	}
	return FromColor(c), nil
}

// ToHex converts OKHSL coordinates to a #rrggbb string.
func ToHex(h, s, l float64) string {
	return OKHSL{H: h, S: s, L: l}.Hex()
}

// RelativeLuminance returns the WCAG 2.1 relative luminance of c.
func RelativeLuminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG 2.1 contrast ratio of two colors, in [1, 21].
// The result does not depend on argument order.
func Contrast(a, b colorful.Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastWCAG21 parses both colors and returns their contrast ratio.
func ContrastWCAG21(a, b string) (float64, error) {
	ca, _, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, _, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

// DeltaE76 returns the CIE76 distance between two color strings.
func DeltaE76(a, b string) (float64, error) {
	ca, _, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, _, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return ca.DistanceCIE76(cb), nil
}

func invalidColor(value string, cause error) error {
	return swatchyerrors.NewFormatError(swatchyerrors.CodeInvalidColorFormat, value, cause)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
