package designsystem

import (
	"fmt"
	"strings"
)

const tokenPrefix = "palette-"

// TokenName returns the reference naming a palette tint.
func TokenName(palette, label string) string {
	return tokenPrefix + palette + "-" + label
}

// TokenRef locates a tint inside a palette list.
type TokenRef struct {
	Palette int
	Tint    int
}

// ResolveToken finds the tint a token reference names. Palette names may
// themselves contain dashes, so every palette is tried against the reference.
func ResolveToken(palettes []Palette, token string) (TokenRef, bool) {
	if !strings.HasPrefix(token, tokenPrefix) {
		return TokenRef{}, false
	}
	for pi, palette := range palettes {
		for ti, tint := range palette.Tints {
			if TokenName(palette.Name, tint.Label) == token {
				return TokenRef{Palette: pi, Tint: ti}, true
			}
		}
	}
	return TokenRef{}, false
}

// ResolveColor returns the color a token reference names.
func ResolveColor(palettes []Palette, token string) (string, error) {
	ref, ok := ResolveToken(palettes, token)
	if !ok {
		return "", fmt.Errorf("unknown token %q", token)
	}
	return palettes[ref.Palette].Tints[ref.Tint].Color, nil
}

// PaletteContains reports whether the palette owns the token.
func PaletteContains(palette Palette, token string) bool {
	for _, tint := range palette.Tints {
		if TokenName(palette.Name, tint.Label) == token {
			return true
		}
	}
	return false
}

// CenterIndexOf returns the index treated as a palette's center tint.
func CenterIndexOf(n int) int {
	return n / 2
}
