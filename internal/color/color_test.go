package color

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

func TestParseAcceptsSupportedSyntaxes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		hex   string
		alpha float64
	}{
		{name: "long hex", input: "#3B82F6", hex: "#3b82f6", alpha: 1},
		{name: "short hex", input: "#fff", hex: "#ffffff", alpha: 1},
		{name: "rgb", input: "rgb(51, 51, 51)", hex: "#333333", alpha: 1},
		{name: "rgba", input: "rgba(0, 0, 0, 0.1)", hex: "#000000", alpha: 0.1},
		{name: "rgba without leading zero", input: "RGBA(255,255,255,.5)", hex: "#ffffff", alpha: 0.5},
		{name: "surrounding whitespace", input: "  #000000 ", hex: "#000000", alpha: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, alpha, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.hex, c.Hex())
			require.InDelta(t, tc.alpha, alpha, 1e-9)
		})
	}
}

func TestParseRejectsUnknownSyntax(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "red", "#12345", "#gggggg", "hsl(0, 0%, 0%)", "rgb(256, 0, 0)", "rgba(0, 0, 0, 1.5)", "#ffffff00"}
	for _, input := range inputs {
		_, _, err := Parse(input)
		require.Error(t, err, input)
		require.ErrorIs(t, err, swatchyerrors.ErrInvalidColorFormat, input)
	}
}

func TestOKHSLRoundTripWithinOneUnit(t *testing.T) {
	t.Parallel()

	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				assertRoundTrip(t, fmt.Sprintf("#%02x%02x%02x", r, g, b))
			}
		}
	}

	for _, hex := range []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#18181b", "#fafafa", "#7c3aed", "#010101", "#fefefe", "#ff0000", "#00ff00", "#0000ff"} {
		assertRoundTrip(t, hex)
	}
}

// Colors at the gamut cusp read slightly above full saturation.
const maxSaturationOvershoot = 1.05

func TestOKHSLRoundTripDenseGrid(t *testing.T) {
	if testing.Short() {
		t.Skip("dense sweep")
	}
	t.Parallel()

	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 3 {
			for b := 0; b <= 255; b += 3 {
				hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
				hsl, err := ToOKHSL(hex)
				require.NoError(t, err)
				back, _, err := Parse(ToHex(hsl.H, hsl.S, hsl.L))
				require.NoError(t, err)
				br, bg, bb := back.RGB255()
				if absDiff(r, int(br)) > 1 || absDiff(g, int(bg)) > 1 || absDiff(b, int(bb)) > 1 {
					t.Fatalf("%s -> %+v -> %s", hex, hsl, back.Hex())
				}
			}
		}
	}
}

func TestOKHSLRoundTripAtGamutEdge(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#000c57", "#001578", "#0000ff", "#1e3a8a", "#172554", "#000033"} {
		assertRoundTrip(t, hex)
	}

	hsl, err := ToOKHSL("#000c57")
	require.NoError(t, err)
	require.Greater(t, hsl.S, 1.0, "saturation overshoot is preserved")
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func assertRoundTrip(t *testing.T, hex string) {
	t.Helper()

	hsl, err := ToOKHSL(hex)
	require.NoError(t, err)
	require.GreaterOrEqual(t, hsl.H, 0.0, hex)
	require.Less(t, hsl.H, 360.0, hex)
	require.GreaterOrEqual(t, hsl.S, 0.0, hex)
	require.LessOrEqual(t, hsl.S, maxSaturationOvershoot, hex)
	require.GreaterOrEqual(t, hsl.L, 0.0, hex)
	require.LessOrEqual(t, hsl.L, 1.0, hex)

	back := ToHex(hsl.H, hsl.S, hsl.L)

	original, _, err := Parse(hex)
	require.NoError(t, err)
	restored, _, err := Parse(back)
	require.NoError(t, err)

	or, og, ob := original.RGB255()
	rr, rg, rb := restored.RGB255()
	require.InDelta(t, float64(or), float64(rr), 1, "%s -> %s", hex, back)
	require.InDelta(t, float64(og), float64(rg), 1, "%s -> %s", hex, back)
	require.InDelta(t, float64(ob), float64(rb), 1, "%s -> %s", hex, back)
}

func TestOKHSLExtremes(t *testing.T) {
	t.Parallel()

	white, err := ToOKHSL("#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 1.0, white.L, 1e-6)
	require.Zero(t, white.S)
	require.True(t, white.IsLight())

	black, err := ToOKHSL("#000000")
	require.NoError(t, err)
	require.Zero(t, black.L)
	require.Zero(t, black.S)
	require.False(t, black.IsLight())

	require.Equal(t, "#ffffff", ToHex(0, 0, 1))
	require.Equal(t, "#000000", ToHex(0, 0, 0))
	require.Equal(t, "#000000", ToHex(120, 0.5, -0.2))
}

func TestOKHSLHueOrdering(t *testing.T) {
	t.Parallel()

	red, err := ToOKHSL("#ff0000")
	require.NoError(t, err)
	blue, err := ToOKHSL("#0000ff")
	require.NoError(t, err)

	require.InDelta(t, 29, red.H, 2)
	require.InDelta(t, 264, blue.H, 2)
	require.InDelta(t, 1.0, red.S, 1e-2)
}

func TestContrastWCAG21(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastWCAG21("#000000", "#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 1e-9)

	same, err := ContrastWCAG21("#3b82f6", "#3b82f6")
	require.NoError(t, err)
	require.Equal(t, 1.0, same)

	pairs := [][2]string{{"#3b82f6", "#ffffff"}, {"#18181b", "#a1a1aa"}, {"rgb(10, 20, 30)", "#fefefe"}}
	for _, pair := range pairs {
		ab, err := ContrastWCAG21(pair[0], pair[1])
		require.NoError(t, err)
		ba, err := ContrastWCAG21(pair[1], pair[0])
		require.NoError(t, err)
		require.Equal(t, ab, ba)
		require.GreaterOrEqual(t, ab, 1.0)
	}

	_, err = ContrastWCAG21("nope", "#ffffff")
	require.ErrorIs(t, err, swatchyerrors.ErrInvalidColorFormat)
}

func TestDeltaE76(t *testing.T) {
	t.Parallel()

	zero, err := DeltaE76("#123456", "#123456")
	require.NoError(t, err)
	require.Zero(t, zero)

	near, err := DeltaE76("#ffffff", "#fafafa")
	require.NoError(t, err)
	far, err := DeltaE76("#ffffff", "#18181b")
	require.NoError(t, err)
	require.Less(t, near, far)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	hex, err := Normalize("rgba(27, 31, 35, 0.15)")
	require.NoError(t, err)
	require.Equal(t, "#1b1f23", hex)

	_, err = Normalize("transparent")
	require.ErrorIs(t, err, swatchyerrors.ErrInvalidColorFormat)
}
