package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/shadow"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func newShadowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shadows",
		Short: "Parse box-shadow values and browse the preset library",
	}

	cmd.AddCommand(newShadowsParseCmd())
	cmd.AddCommand(newShadowsPresetsCmd())

	return cmd
}

func newShadowsParseCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "parse <box-shadow>",
		Short: "Parse a composite box-shadow value into layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, parseErr := shadow.ParseComposite(args[0])

			var batch *shadow.BatchError
			if parseErr != nil && !errors.As(parseErr, &batch) {
				return newCommandError("parse shadow", args[0], parseErr, "")
			}

			if asYAML {
				if err := printYAML(cmd.OutOrStdout(), layers); err != nil {
					return err
				}
			} else if err := printLayers(cmd.OutOrStdout(), layers); err != nil {
				return err
			}

			if batch != nil {
				return newCommandError("parse shadow", fmt.Sprintf("%d of %d layers", len(batch.Failures), len(batch.Failures)+len(layers)),
					batch, "layers need an rgb() or rgba() color and px lengths")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print layers as YAML")

	return cmd
}

func newShadowsPresetsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in shadow presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := shadow.Presets()
			if filter != "" {
				kept := sources[:0]
				for _, src := range sources {
					if strings.Contains(src.Name, filter) || strings.Contains(strings.ToLower(src.Author), strings.ToLower(filter)) {
						kept = append(kept, src)
					}
				}
				sources = kept
			}

			groups, err := shadow.ParsePresets(sources)
			if err != nil {
				return newCommandError("load presets", "built-in library", err, "")
			}

			w := cmd.OutOrStdout()
			for _, group := range groups {
				css, err := shadow.SerializeComposite(group.Layers)
				if err != nil {
					return newCommandError("serialize preset", group.Name, err, "")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", group.Name, group.Author, css)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list presets whose name or author contains this text")

	return cmd
}

func printLayers(w io.Writer, layers []designsystem.ShadowLayer) error {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-3s %-6s %-6s %-6s %-6s %-8s %-7s %s", "#", "x", "y", "blur", "spread", "color", "opacity", "inset")))
	for i, layer := range layers {
		fmt.Fprintf(w, "%-3d %-6g %-6g %-6g %-6g %-8s %-7g %t\n",
			i, layer.ShadowX, layer.ShadowY, layer.Blur, layer.Spread, layer.Color, layer.ColorOpacity, layer.Inset)
	}
	css, err := shadow.SerializeComposite(layers)
	if err != nil {
		return newCommandError("serialize shadow", "layers", err, "")
	}
	if css != "" {
		fmt.Fprintf(w, "\n%s\n", css)
	}
	return nil
}
