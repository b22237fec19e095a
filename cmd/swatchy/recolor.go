package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/theme"
)

type recolorOptions struct {
	ConfigPath string
	Theme      string
	Background string
}

type recolorOutput struct {
	Theme             string                         `yaml:"theme,omitempty"`
	Background        string                         `yaml:"background"`
	Reversed          bool                           `yaml:"reversed"`
	Palettes          []designsystem.Palette         `yaml:"palettes"`
	IndependentColors designsystem.IndependentColors `yaml:"independentColors,omitempty"`
}

func newRecolorCmd() *cobra.Command {
	opts := recolorOptions{}

	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "Recolor the palettes of a document for another background",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(opts.ConfigPath)
			if err != nil {
				return err
			}
			out, err := runRecolor(doc, opts)
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to design-system document")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Theme whose background to recolor for")
	cmd.Flags().StringVar(&opts.Background, "background", "", "Background color to recolor for (overrides --theme)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRecolor(doc *designsystem.Document, opts recolorOptions) (recolorOutput, error) {
	out := recolorOutput{Theme: opts.Theme, Background: opts.Background}

	if out.Background == "" {
		if opts.Theme == "" {
			return out, newCommandError("recolor palettes", "no target", fmt.Errorf("neither --theme nor --background given"),
				"pass --theme <name> or --background <color>")
		}
		target, ok := doc.FindTheme(opts.Theme)
		if !ok {
			return out, newCommandError("recolor palettes", opts.Theme, fmt.Errorf("unknown theme"), suggestTheme(doc, opts.Theme))
		}
		out.Background = target.Background
	}

	main := doc.MainTheme()
	req := theme.RecolorRequest{
		Palettes:          doc.Palettes,
		DefaultBackground: main.Background,
		NewBackground:     out.Background,
	}

	oldBg, err := color.ToOKHSL(main.Background)
	if err != nil {
		return out, newCommandError("recolor palettes", main.Background, err, "backgrounds must be hex or rgb() colors")
	}
	newBg, err := color.ToOKHSL(out.Background)
	if err != nil {
		return out, newCommandError("recolor palettes", out.Background, err, "backgrounds must be hex or rgb() colors")
	}
	out.Reversed = theme.IsReversed(oldBg, newBg)

	out.Palettes, err = theme.RecolorPalettes(req)
	if err != nil {
		return out, newCommandError("recolor palettes", out.Background, err, "")
	}
	out.IndependentColors, err = theme.RecolorIndependentColors(doc.IndependentColors, main.Background, out.Background)
	if err != nil {
		return out, newCommandError("recolor independent colors", out.Background, err, "")
	}
	return out, nil
}

func themeNames(doc *designsystem.Document) []string {
	names := []string{doc.MainTheme().Name}
	for _, other := range doc.OtherThemes() {
		names = append(names, other.Name)
	}
	return names
}

func suggestTheme(doc *designsystem.Document, name string) string {
	names := themeNames(doc)
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return fmt.Sprintf("did you mean %q?", matches[0].Str)
	}
	return "available themes: " + strings.Join(names, ", ")
}
