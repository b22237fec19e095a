package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
)

func TestGrade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio float64
		want  string
	}{
		{ratio: 21, want: "AAA"},
		{ratio: 7, want: "AAA"},
		{ratio: 6.99, want: "AA"},
		{ratio: 4.5, want: "AA"},
		{ratio: 3.2, want: "AA large"},
		{ratio: 1.4, want: "fail"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Grade(tc.ratio), "ratio %.2f", tc.ratio)
	}
}

func TestContrastMeterView(t *testing.T) {
	t.Parallel()

	meter := NewContrastMeter()
	out := meter.View(4.54)
	require.Contains(t, out, "4.54")
	require.Contains(t, out, "AA")

	require.Contains(t, meter.View(1), "fail")
	require.Contains(t, meter.View(30), "AAA")
}

func TestPaletteRowListsTints(t *testing.T) {
	t.Parallel()

	row := PaletteRow(designsystem.Palette{Name: "gray", Tints: []designsystem.Tint{
		{Label: "50", Color: "#fafafa"},
		{Label: "900", Color: "#18181b"},
		{Label: "bad", Color: "nope"},
	}}, 8)

	require.Contains(t, row, "gray")
	require.Contains(t, row, "50")
	require.Contains(t, row, "900")
	require.Contains(t, row, "bad")
}

func TestTabs(t *testing.T) {
	t.Parallel()

	out := Tabs([]string{"light", "dark"}, 1)
	require.Contains(t, out, "light")
	require.Contains(t, out, "dark")
	require.Equal(t, 1, strings.Count(out, "│"))
}
