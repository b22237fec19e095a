package export

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/shadow"
)

// Token types understood by Token Studio.
const (
	tokenTypeColor     = "color"
	tokenTypeBoxShadow = "boxShadow"
	shadowTypeDrop     = "dropShadow"
	shadowTypeInner    = "innerShadow"
)

// object is a JSON object that keeps insertion order.
type object = *orderedmap.OrderedMap[string, any]

func newObject() object {
	return orderedmap.New[string, any]()
}

type colorToken struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type shadowValue struct {
	X      string `json:"x"`
	Y      string `json:"y"`
	Blur   string `json:"blur"`
	Spread string `json:"spread"`
	Color  string `json:"color"`
	Type   string `json:"type"`
}

type shadowToken struct {
	Type  string        `json:"type"`
	Value []shadowValue `json:"value"`
}

// Tokens renders a Token-Studio token file: one token set per theme, one
// group per palette, then $metadata with the set order.
func Tokens(doc *designsystem.Document, sets []ThemeSet) ([]byte, error) {
	root := newObject()
	order := make([]string, 0, len(sets))

	for _, set := range sets {
		tokenSet, err := themeTokenSet(set)
		if err != nil {
			return nil, err
		}
		if set.Main {
			if err := appendShadowGroup(tokenSet, doc.Shadows); err != nil {
				return nil, err
			}
			appendSemanticGroup(tokenSet, doc)
		}
		root.Set(set.Name, tokenSet)
		order = append(order, set.Name)
	}

	metadata := newObject()
	metadata.Set("tokenSetOrder", order)
	root.Set("$metadata", metadata)

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func themeTokenSet(set ThemeSet) (object, error) {
	tokenSet := newObject()
	for _, palette := range set.Palettes {
		group := newObject()
		for _, tint := range palette.Tints {
			hex, err := color.Normalize(tint.Color)
			if err != nil {
				return nil, fmt.Errorf("theme %q palette %q: %w", set.Name, palette.Name, err)
			}
			group.Set(designsystem.TokenName(palette.Name, tint.Label), colorToken{Type: tokenTypeColor, Value: hex})
		}
		tokenSet.Set(palette.Name, group)
	}

	if set.Independent.White == "" && len(set.Independent.Colors) == 0 {
		return tokenSet, nil
	}
	group := newObject()
	if set.Independent.White != "" {
		hex, err := color.Normalize(set.Independent.White)
		if err != nil {
			return nil, fmt.Errorf("theme %q white: %w", set.Name, err)
		}
		group.Set("white", colorToken{Type: tokenTypeColor, Value: hex})
	}
	for _, tint := range set.Independent.Colors {
		hex, err := color.Normalize(tint.Color)
		if err != nil {
			return nil, fmt.Errorf("theme %q color %q: %w", set.Name, tint.Label, err)
		}
		group.Set("color-"+tint.Label, colorToken{Type: tokenTypeColor, Value: hex})
	}
	tokenSet.Set("independent", group)
	return tokenSet, nil
}

func appendShadowGroup(tokenSet object, shadows []designsystem.ShadowSource) error {
	if len(shadows) == 0 {
		return nil
	}
	group := newObject()
	for _, src := range shadows {
		layers, err := shadow.ParseComposite(src.Value)
		if err != nil {
			return fmt.Errorf("shadow %q: %w", src.Name, err)
		}
		values := make([]shadowValue, len(layers))
		for i, layer := range layers {
			value, err := toShadowValue(layer)
			if err != nil {
				return fmt.Errorf("shadow %q layer %d: %w", src.Name, i, err)
			}
			values[i] = value
		}
		group.Set("shadow-"+src.Name, shadowToken{Type: tokenTypeBoxShadow, Value: values})
	}
	tokenSet.Set("shadows", group)
	return nil
}

func toShadowValue(layer designsystem.ShadowLayer) (shadowValue, error) {
	kind := shadowTypeDrop
	if layer.Inset {
		kind = shadowTypeInner
	}
	c, _, err := color.Parse(layer.Color)
	if err != nil {
		return shadowValue{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return shadowValue{
		X:      formatNumber(layer.ShadowX),
		Y:      formatNumber(layer.ShadowY),
		Blur:   formatNumber(layer.Blur),
		Spread: formatNumber(layer.Spread),
		Color:  fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(layer.ColorOpacity)),
		Type:   kind,
	}, nil
}

// appendSemanticGroup writes semantic roles as Token-Studio aliases of the
// palette tokens they reference.
func appendSemanticGroup(tokenSet object, doc *designsystem.Document) {
	group := newObject()
	for _, role := range doc.Semantic.Roles() {
		if role.Token == "" {
			continue
		}
		ref, ok := designsystem.ResolveToken(doc.Palettes, role.Token)
		if !ok {
			continue
		}
		palette := doc.Palettes[ref.Palette].Name
		group.Set("semantic-"+role.Role, colorToken{Type: tokenTypeColor, Value: "{" + palette + "." + role.Token + "}"})
	}
	if group.Len() > 0 {
		tokenSet.Set("semantic", group)
	}
}
