// Package export renders a design-system document into CSS custom properties
// and a Token-Studio token file.
package export

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/logger"
	"github.com/alexisbeaulieu97/swatchy/internal/theme"
)

// ThemeSet is the resolved color content of one theme.
type ThemeSet struct {
	Name        string
	Background  string
	Main        bool
	Palettes    []designsystem.Palette
	Independent designsystem.IndependentColors
}

// BuildThemeSets resolves the main theme and recolors every other theme
// concurrently. The result keeps document order: main first, then others.
func BuildThemeSets(ctx context.Context, doc *designsystem.Document, log *logger.Logger) ([]ThemeSet, error) {
	main := doc.MainTheme()
	others := doc.OtherThemes()

	sets := make([]ThemeSet, len(others)+1)
	sets[0] = ThemeSet{
		Name:        main.Name,
		Background:  main.Background,
		Main:        true,
		Palettes:    designsystem.ClonePalettes(doc.Palettes),
		Independent: doc.IndependentColors,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, other := range others {
		i, other := i, other
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			palettes, err := theme.RecolorPalettes(theme.RecolorRequest{
				Palettes:          doc.Palettes,
				DefaultBackground: main.Background,
				NewBackground:     other.Background,
			})
			if err != nil {
				return fmt.Errorf("theme %q: %w", other.Name, err)
			}

			independent, err := theme.RecolorIndependentColors(doc.IndependentColors, main.Background, other.Background)
			if err != nil {
				return fmt.Errorf("theme %q: %w", other.Name, err)
			}

			sets[i+1] = ThemeSet{
				Name:        other.Name,
				Background:  other.Background,
				Palettes:    palettes,
				Independent: independent,
			}
			log.ForTheme(other.Name).Debug("recolored theme", "palettes", len(palettes))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
