package shadow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  designsystem.ShadowLayer
	}{
		{
			name:  "rgba with three lengths",
			input: "rgba(0, 0, 0, 0.1) 0px 4px 12px",
			want:  designsystem.ShadowLayer{Color: "#000000", ShadowY: 4, Blur: 12, ColorOpacity: 0.1},
		},
		{
			name:  "rgb defaults opacity",
			input: "rgb(51, 51, 51) 0px 0px 0px 3px",
			want:  designsystem.ShadowLayer{Color: "#333333", Spread: 3, ColorOpacity: 1},
		},
		{
			name:  "trailing inset",
			input: "rgba(10, 37, 64, 0.35) 0px -2px 6px 0px inset",
			want:  designsystem.ShadowLayer{Color: "#0a2540", ShadowY: -2, Blur: 6, ColorOpacity: 0.35, Inset: true},
		},
		{
			name:  "leading inset and color last",
			input: "inset 1px 2px 3px 4px rgba(255, 255, 255, .5)",
			want:  designsystem.ShadowLayer{Color: "#ffffff", ShadowX: 1, ShadowY: 2, Blur: 3, Spread: 4, ColorOpacity: 0.5, Inset: true},
		},
		{
			name:  "two lengths",
			input: "rgba(240, 46, 170, 0.4) -5px 5px",
			want:  designsystem.ShadowLayer{Color: "#f02eaa", ShadowX: -5, ShadowY: 5, ColorOpacity: 0.4},
		},
		{
			name:  "fractional and em lengths",
			input: "rgba(67, 71, 85, 0.27) 1.95px 0px 0.25em",
			want:  designsystem.ShadowLayer{Color: "#434755", ShadowX: 1.95, Blur: 0.25, ColorOpacity: 0.27},
		},
		{
			name:  "color only",
			input: "rgb(0, 0, 255)",
			want:  designsystem.ShadowLayer{Color: "#0000ff", ColorOpacity: 1},
		},
		{
			name:  "out of range channel clamps",
			input: "rgb(300, 0, 0) 1px 1px",
			want:  designsystem.ShadowLayer{Color: "#ff0000", ShadowX: 1, ShadowY: 1, ColorOpacity: 1},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseMissingBlurResetsSpread(t *testing.T) {
	t.Parallel()

	got, err := Parse("inset rgba(0, 0, 0, 0.2) 1px 2px inset 5px")
	require.NoError(t, err)
	require.True(t, got.Inset)
	require.Zero(t, got.Blur)
	require.Zero(t, got.Spread)
}

func TestParseRejectsUnsupportedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0px 1px 2px black", "hsl(0, 0%, 0%) 0px 1px", "", "rgba(0, 0, 0, 1.5) 0px 1px"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, swatchyerrors.ErrUnsupportedShadowFormat, input)
	}

	_, err := Parse("rgba(0, 0, 0, 0.1) 0px large 2px")
	require.ErrorIs(t, err, swatchyerrors.ErrInvalidLengthValue)
	require.False(t, errors.Is(err, swatchyerrors.ErrUnsupportedShadowFormat))
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	s, err := Serialize(designsystem.ShadowLayer{Color: "#0a2540", ShadowY: -2, Blur: 6, ColorOpacity: 0.35, Inset: true})
	require.NoError(t, err)
	require.Equal(t, "inset 0px -2px 6px 0px rgba(10, 37, 64, 0.35)", s)

	s, err = Serialize(designsystem.ShadowLayer{Color: "#000000", ShadowX: 1.5, ShadowY: 4, Blur: 12, ColorOpacity: 1})
	require.NoError(t, err)
	require.Equal(t, "1.5px 4px 12px 0px rgba(0, 0, 0, 1)", s)

	_, err = Serialize(designsystem.ShadowLayer{Color: "black"})
	require.ErrorIs(t, err, swatchyerrors.ErrInvalidColorFormat)
}

func TestParseSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, preset := range Presets() {
		for _, part := range Split(preset.Value) {
			first, err := Parse(part)
			require.NoError(t, err, part)

			serialized, err := Serialize(first)
			require.NoError(t, err)

			second, err := Parse(serialized)
			require.NoError(t, err, serialized)
			require.Equal(t, first, second, "%s -> %s", part, serialized)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	parts := Split("rgba(0,0,0,0.1) 0px 1px 3px, rgba(0,0,0,0.06) 0px 1px 2px")
	require.Equal(t, []string{"rgba(0,0,0,0.1) 0px 1px 3px", "rgba(0,0,0,0.06) 0px 1px 2px"}, parts)

	require.Empty(t, Split("   "))
	require.Empty(t, Split(""))
	require.Equal(t, []string{"rgb(1, 2, 3) 1px 1px"}, Split("rgb(1, 2, 3) 1px 1px,"))
	require.Equal(t, []string{"a", "", "b"}, Split("a, , b"))
	require.Equal(t, []string{"", "a"}, Split(", a"))
}

func TestParseCompositeReportsEmptyEntries(t *testing.T) {
	t.Parallel()

	layers, err := ParseComposite("rgb(0, 0, 0) 1px 1px, , rgb(255, 255, 255) 2px 2px")
	require.Len(t, layers, 2)

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Failures, 1)
	require.Equal(t, 1, batch.Failures[0].Index)
	require.Empty(t, batch.Failures[0].Input)
	require.ErrorIs(t, err, swatchyerrors.ErrUnsupportedShadowFormat)

	layers, err = ParseComposite("")
	require.NoError(t, err)
	require.Empty(t, layers)
}

func TestParseCompositeKeepsGoodLayers(t *testing.T) {
	t.Parallel()

	layers, err := ParseComposite("rgba(0, 0, 0, 0.1) 0px 1px 3px, 0px 1px 2px red, rgb(1, 2, 3) 1px 1px, rgba(0, 0, 0, 0.2) 1px bad")
	require.Len(t, layers, 2)
	require.Equal(t, "#000000", layers[0].Color)
	require.Equal(t, "#010203", layers[1].Color)

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Failures, 2)
	require.Equal(t, 1, batch.Failures[0].Index)
	require.Equal(t, 3, batch.Failures[1].Index)
	require.ErrorIs(t, err, swatchyerrors.ErrUnsupportedShadowFormat)
	require.ErrorIs(t, err, swatchyerrors.ErrInvalidLengthValue)

	layers, err = ParseComposite("rgba(0, 0, 0, 0.1) 0px 1px 3px")
	require.NoError(t, err)
	require.Len(t, layers, 1)
}

func TestSerializeCompositePreservesOrder(t *testing.T) {
	t.Parallel()

	in := "rgba(50, 50, 93, 0.25) 0px 30px 60px -12px inset, rgba(0, 0, 0, 0.3) 0px 18px 36px -18px inset"
	layers, err := ParseComposite(in)
	require.NoError(t, err)

	out, err := SerializeComposite(layers)
	require.NoError(t, err)
	require.Equal(t, "inset 0px 30px 60px -12px rgba(50, 50, 93, 0.25), inset 0px 18px 36px -18px rgba(0, 0, 0, 0.3)", out)

	again, err := ParseComposite(out)
	require.NoError(t, err)
	require.Equal(t, layers, again)
}

func TestParsePresets(t *testing.T) {
	t.Parallel()

	groups, err := ParsePresets(Presets())
	require.NoError(t, err)
	require.Len(t, groups, len(Presets()))
	require.Equal(t, "0", groups[0].Name)

	for _, g := range groups {
		require.NotEmpty(t, g.Layers, g.Name)
	}

	_, err = ParsePresets([]PresetSource{{Name: "broken", Value: "0px 0px black"}})
	require.ErrorIs(t, err, swatchyerrors.ErrUnsupportedShadowFormat)
}
