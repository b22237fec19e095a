package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

const validYAML = `version: "1.0"
metadata:
  name: "Acme"
palettes:
  - name: gray
    tints:
      - label: "50"
        color: "#fafafa"
      - label: "500"
        color: "#71717a"
      - label: "900"
        color: "#18181b"
  - name: blue
    tints:
      - label: "500"
        color: "rgb(59, 130, 246)"
themes:
  main:
    name: light
    background: "#ffffff"
  others:
    - name: dark
      background: "#09090b"
semantic:
  background: palette-gray-50
  textDark: palette-gray-900
shadows:
  - name: card
    value: "rgba(0, 0, 0, 0.1) 0px 4px 12px, rgba(0, 0, 0, 0.06) 0px 1px 2px"
`

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *designsystem.Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *designsystem.Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Acme", doc.Metadata.Name)
				require.Len(t, doc.Palettes, 2)
				require.Equal(t, "light", doc.MainTheme().Name)
				require.Equal(t, "#09090b", doc.OtherThemes()[0].Background)
				require.Equal(t, "palette-gray-900", doc.Semantic.TextDark)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "version: \"1.0\"\nmetadata:\n  name: [1, 2\n",
			assert: func(t *testing.T, doc *designsystem.Document, err error) {
				var parseErr *swatchyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown fields are rejected",
			contents: validYAML + "extra: true\n",
			assert: func(t *testing.T, doc *designsystem.Document, err error) {
				var parseErr *swatchyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "extra")
			},
		},
		{
			name:     "version must follow major.minor",
			contents: "version: beta\nmetadata:\n  name: x\n",
			assert: func(t *testing.T, doc *designsystem.Document, err error) {
				var validationErr *swatchyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "metadata name is required",
			contents: "version: \"1.0\"\nmetadata:\n  darkMode: true\n",
			assert: func(t *testing.T, doc *designsystem.Document, err error) {
				var validationErr *swatchyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "metadata.name", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := LoadDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *swatchyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument("inline", []byte(validYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "design.yaml")
	require.NoError(t, WriteDocument(path, doc))

	again, err := LoadDocument(path)
	require.NoError(t, err)
	require.Equal(t, doc, again)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errors.New("no position")))
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadExampleDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadDocument(filepath.Join("..", "..", "examples", "design-system.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Acme", doc.Metadata.Name)
	require.Len(t, doc.Palettes, 2)
	require.Len(t, doc.Themes.Others, 2)
	require.Len(t, doc.Shadows, 2)
}
