package shadow

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
)

// PresetSource is a library shadow in its raw composite form.
type PresetSource struct {
	Name   string
	Value  string
	Author string
}

// Presets returns a copy of the built-in shadow library.
func Presets() []PresetSource {
	out := make([]PresetSource, len(presetSources))
	copy(out, presetSources)
	return out
}

// ParsePresets parses raw presets into shadow groups. Any failing entry fails
// the whole call since presets are expected to be well formed.
func ParsePresets(sources []PresetSource) ([]designsystem.ShadowGroup, error) {
	groups := make([]designsystem.ShadowGroup, 0, len(sources))
	for _, src := range sources {
		layers, err := ParseComposite(src.Value)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", src.Name, err)
		}
		groups = append(groups, designsystem.ShadowGroup{
			Name:   src.Name,
			Layers: layers,
			Author: src.Author,
		})
	}
	return groups, nil
}
