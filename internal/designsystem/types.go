// Package designsystem defines the value types shared by the color engines,
// the document loader and the exporters. Values are replaced wholesale; no
// engine mutates its inputs.
package designsystem

// Tint is a single named swatch within a palette.
type Tint struct {
	Label string `yaml:"label" json:"label" validate:"required,token_name"`
	Color string `yaml:"color" json:"color" validate:"required,css_color"`
}

// Palette is an ordered tint sequence. Order is meaningful (light to dark or
// dark to light).
type Palette struct {
	Name  string `yaml:"name" json:"paletteName" validate:"required,token_name"`
	Tints []Tint `yaml:"tints" json:"tints" validate:"required,min=1,unique=Label,dive"`
}

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	tints := make([]Tint, len(p.Tints))
	copy(tints, p.Tints)
	return Palette{Name: p.Name, Tints: tints}
}

// Theme binds a name to a background color.
type Theme struct {
	Name       string `yaml:"name" json:"name" validate:"required,token_name"`
	Background string `yaml:"background,omitempty" json:"background,omitempty" validate:"omitempty,css_color"`
}

// Themes holds the reference theme and the themes derived from it.
type Themes struct {
	Main   *Theme  `yaml:"main,omitempty" json:"mainTheme,omitempty"`
	Others []Theme `yaml:"others,omitempty" json:"otherThemes,omitempty" validate:"omitempty,unique=Name,dive"`
}

// IndependentColors are colors that do not belong to any palette.
type IndependentColors struct {
	White  string `yaml:"white,omitempty" json:"white,omitempty" validate:"omitempty,css_color"`
	Colors []Tint `yaml:"colors,omitempty" json:"independantColors,omitempty" validate:"omitempty,unique=Label,dive"`
}

// ShadowLayer is a single box-shadow declaration.
type ShadowLayer struct {
	ShadowX      float64 `yaml:"x" json:"shadowX"`
	ShadowY      float64 `yaml:"y" json:"shadowY"`
	Blur         float64 `yaml:"blur" json:"blur"`
	Spread       float64 `yaml:"spread" json:"spread"`
	Color        string  `yaml:"color" json:"color"`
	ColorOpacity float64 `yaml:"opacity" json:"colorOpacity"`
	Inset        bool    `yaml:"inset,omitempty" json:"inset"`
}

// ShadowGroup is a named stack of shadow layers, composited in array order.
type ShadowGroup struct {
	Name   string        `yaml:"name" json:"shadowName"`
	Layers []ShadowLayer `yaml:"layers" json:"shadowsArray"`
	Author string        `yaml:"author,omitempty" json:"author,omitempty"`
}

// SemanticTokens holds token references (not raw colors). Empty means unset.
type SemanticTokens struct {
	Background  string `yaml:"background,omitempty" json:"background,omitempty" validate:"omitempty,palette_ref"`
	TextLight   string `yaml:"textLight,omitempty" json:"textLight,omitempty" validate:"omitempty,palette_ref"`
	TextDefault string `yaml:"textDefault,omitempty" json:"textDefault,omitempty" validate:"omitempty,palette_ref"`
	TextDark    string `yaml:"textDark,omitempty" json:"textDark,omitempty" validate:"omitempty,palette_ref"`
	Border      string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,palette_ref"`
}

// Roles returns the semantic roles in display order paired with their references.
func (s SemanticTokens) Roles() []SemanticRole {
	return []SemanticRole{
		{Role: "background", Token: s.Background},
		{Role: "text-light", Token: s.TextLight},
		{Role: "text-default", Token: s.TextDefault},
		{Role: "text-dark", Token: s.TextDark},
		{Role: "border", Token: s.Border},
	}
}

// SemanticRole pairs a semantic role name with a token reference.
type SemanticRole struct {
	Role  string
	Token string
}

// Metadata identifies a design-system document.
type Metadata struct {
	ID       string `yaml:"id,omitempty" json:"designSystemId,omitempty"`
	Name     string `yaml:"name" json:"designSystemName" validate:"required,min=1,max=100"`
	DarkMode bool   `yaml:"darkMode,omitempty" json:"darkMode"`
}

// Document is a complete design system as persisted by the host.
type Document struct {
	Version           string            `yaml:"version" json:"version" validate:"required,semver"`
	Metadata          Metadata          `yaml:"metadata" json:"metadata"`
	Palettes          []Palette         `yaml:"palettes" json:"palettes" validate:"omitempty,unique=Name,dive"`
	IndependentColors IndependentColors `yaml:"independentColors,omitempty" json:"independantColors"`
	Themes            Themes            `yaml:"themes,omitempty" json:"themes"`
	Semantic          SemanticTokens    `yaml:"semantic,omitempty" json:"semanticColorTokens"`
	Shadows           []ShadowSource    `yaml:"shadows,omitempty" json:"shadows,omitempty" validate:"omitempty,unique=Name,dive"`
}

// ShadowSource is a named shadow as written in the document: a composite
// box-shadow string.
type ShadowSource struct {
	Name  string `yaml:"name" json:"shadowName" validate:"required,token_name"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

// DefaultBackground is used when a theme leaves its background unset.
const DefaultBackground = "#dddddd"

// MainTheme returns the main theme, defaulting its name and background.
func (d Document) MainTheme() Theme {
	main := Theme{Name: "main-palettes", Background: DefaultBackground}
	if d.Themes.Main != nil {
		if d.Themes.Main.Name != "" {
			main.Name = d.Themes.Main.Name
		}
		if d.Themes.Main.Background != "" {
			main.Background = d.Themes.Main.Background
		}
	}
	return main
}

// OtherThemes returns the derived themes with backgrounds defaulted.
func (d Document) OtherThemes() []Theme {
	themes := make([]Theme, 0, len(d.Themes.Others))
	for _, theme := range d.Themes.Others {
		if theme.Background == "" {
			theme.Background = DefaultBackground
		}
		themes = append(themes, theme)
	}
	return themes
}

// FindTheme looks a theme up by name among the main and other themes.
func (d Document) FindTheme(name string) (Theme, bool) {
	main := d.MainTheme()
	if main.Name == name {
		return main, true
	}
	for _, theme := range d.OtherThemes() {
		if theme.Name == name {
			return theme, true
		}
	}
	return Theme{}, false
}

// ClonePalettes deep-copies a palette list.
func ClonePalettes(palettes []Palette) []Palette {
	out := make([]Palette, len(palettes))
	for i, p := range palettes {
		out[i] = p.Clone()
	}
	return out
}
