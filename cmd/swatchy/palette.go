package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/theme"
)

type paletteOptions struct {
	Seed       string
	Name       string
	Steps      int
	Naming     string
	ConfigPath string
	Write      bool
}

func newPaletteCmd() *cobra.Command {
	opts := paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a palette from a seed color",
		Long: `Palette spreads OKHSL lightness across the requested number of tints while
keeping the seed's hue and saturation. With --config the palette name is made
unique against the document, and --write appends the palette to it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := designsystem.ParseNamingMode(opts.Naming)
			if err != nil {
				return newCommandError("generate palette", opts.Naming, err, "use one of the modes listed in --help")
			}
			if opts.Write && opts.ConfigPath == "" {
				return newCommandError("generate palette", "--write", fmt.Errorf("no document to write to"), "pass --config <path>")
			}

			var doc *designsystem.Document
			req := theme.GenerateRequest{Seed: opts.Seed, Name: opts.Name, Steps: opts.Steps, Naming: mode}
			if opts.ConfigPath != "" {
				doc, err = loadDocument(opts.ConfigPath)
				if err != nil {
					return err
				}
				req.Taken = designsystem.PaletteNames(doc.Palettes)
			}

			palette, err := theme.GeneratePalette(req)
			if err != nil {
				return newCommandError("generate palette", opts.Seed, err, "pass a hex or rgb() seed and at least one step")
			}

			if opts.Write {
				doc.Palettes = append(doc.Palettes, palette)
				if err := config.WriteDocument(opts.ConfigPath, doc); err != nil {
					return newCommandError("save palette", opts.ConfigPath, err, "")
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Added palette %s to %s\n", palette.Name, opts.ConfigPath)
			}
			return printYAML(cmd.OutOrStdout(), palette)
		},
	}

	cmd.Flags().StringVar(&opts.Seed, "seed", "", "Seed color (hex or rgb())")
	cmd.Flags().StringVar(&opts.Name, "name", "palette", "Palette name")
	cmd.Flags().IntVar(&opts.Steps, "steps", 11, "Number of tints")
	cmd.Flags().StringVar(&opts.Naming, "naming", string(designsystem.NamingHundredsWithHalves),
		"Tint naming mode: 50,100,200...900,950 | 5,10,20...90,95 | 0,10,20... | 0,100,200... | 10,20,30... | 100,200,300...")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Design-system document the palette is named against")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Append the palette to the document")
	cmd.MarkFlagRequired("seed") //nolint:errcheck

	return cmd
}
