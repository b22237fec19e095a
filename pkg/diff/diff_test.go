package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte(":root {\n  --palette-gray-50: #fafafa;\n}\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestCompareSingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte(":root {\n  --palette-gray-50: #fafafa;\n}\n")
	actual := []byte(":root {\n  --palette-gray-50: #ffffff;\n}\n")

	out, stats := Compare(expected, actual, "design-system.css", "design-system.css (on disk)")
	require.Contains(t, out, "--- design-system.css\n")
	require.Contains(t, out, "+++ design-system.css (on disk)\n")
	require.Contains(t, out, "-  --palette-gray-50: #fafafa;\n")
	require.Contains(t, out, "+  --palette-gray-50: #ffffff;\n")
	require.Contains(t, out, " :root {\n")
	require.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	require.True(t, stats.Changed())
}

func TestCompareMissingTrailingNewline(t *testing.T) {
	t.Parallel()

	out, stats := Compare([]byte("a\nb\n"), []byte("a\nb\nc"), "old", "new")
	require.Contains(t, out, "+c\n")
	require.Equal(t, 1, stats.Added)
}

func TestCompareEmptySide(t *testing.T) {
	t.Parallel()

	out, stats := Compare(nil, []byte("one\ntwo\n"), "missing", "rendered")
	require.Contains(t, out, "@@ -1,0 +1,2 @@")
	require.Equal(t, Stats{Added: 2}, stats)
}

func TestGenerateUnifiedDiffTruncatesLargeOutput(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&expected, "old %d\n", i)
		fmt.Fprintf(&actual, "new %d\n", i)
	}

	out := GenerateUnifiedDiff([]byte(expected.String()), []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), maxDiffLines+1)
}
