package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("design.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "design.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "design.yaml:12")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palettes[1].tints[0].color", "is not a css color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palettes[1].tints[0].color", validationErr.Field)
	require.Contains(t, err.Error(), "is not a css color")
}

func TestFormatErrorMatchesSentinelByCode(t *testing.T) {
	t.Parallel()

	err := NewFormatError(CodeInvalidColorFormat, "hsl(0, 0%, 0%)", nil)
	require.ErrorIs(t, err, ErrInvalidColorFormat)
	require.NotErrorIs(t, err, ErrUnsupportedShadowFormat)
	require.Contains(t, err.Error(), "INVALID_COLOR_FORMAT")

	wrapped := fmt.Errorf("layer 2: %w", NewFormatError(CodeInvalidLengthValue, "abc", nil))
	require.ErrorIs(t, wrapped, ErrInvalidLengthValue)
}

func TestFormatErrorUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("bad digit")
	err := NewFormatError(CodeInvalidColorFormat, "#zz0000", cause)
	require.True(t, stdErrors.Is(err, cause))
}

func TestExportErrorIncludesTarget(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewExportError("tokens.json", underlying)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "tokens.json", exportErr.Target)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "tokens.json")
}
