package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/logger"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

// Format selects which files Render produces.
type Format string

const (
	FormatCSS    Format = "css"
	FormatTokens Format = "tokens"
	FormatAll    Format = "all"
)

// File names written into the output directory.
const (
	CSSFileName    = "design-system.css"
	TokensFileName = "design-tokens.json"
)

var fingerprintPattern = regexp.MustCompile(`fingerprint ([0-9a-f]{16})`)

// ParseFormat validates a format flag value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(value); f {
	case FormatCSS, FormatTokens, FormatAll:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want css, tokens or all)", value)
}

// File is one rendered export.
type File struct {
	Name string
	Data []byte
}

// Render produces the export files for doc in a stable order.
func Render(ctx context.Context, doc *designsystem.Document, format Format, log *logger.Logger) ([]File, error) {
	sets, err := BuildThemeSets(ctx, doc, log)
	if err != nil {
		return nil, err
	}

	var files []File
	if format == FormatCSS || format == FormatAll {
		css, err := CSS(doc, sets)
		if err != nil {
			return nil, swatchyerrors.NewExportError(CSSFileName, err)
		}
		files = append(files, File{Name: CSSFileName, Data: []byte(css)})
	}
	if format == FormatTokens || format == FormatAll {
		tokens, err := Tokens(doc, sets)
		if err != nil {
			return nil, swatchyerrors.NewExportError(TokensFileName, err)
		}
		files = append(files, File{Name: TokensFileName, Data: tokens})
	}
	return files, nil
}

// WriteFiles writes files into dir, creating it when needed. It returns the
// written paths.
func WriteFiles(dir string, files []File) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, swatchyerrors.NewExportError(dir, err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return paths, swatchyerrors.NewExportError(path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Fingerprint hashes the document content that drives the exports.
func Fingerprint(doc *designsystem.Document) (string, error) {
	hash, err := hashstructure.Hash(doc, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("fingerprint document: %w", err)
	}
	return fmt.Sprintf("%016x", hash), nil
}

// ReadFingerprint extracts the fingerprint stamped into a CSS export.
func ReadFingerprint(css []byte) (string, bool) {
	m := fingerprintPattern.FindSubmatch(css)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
