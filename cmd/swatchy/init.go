package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/semantic"
	"github.com/alexisbeaulieu97/swatchy/internal/theme"
)

const (
	starterSeed       = "#71717a"
	starterSteps      = 11
	starterLight      = "#ffffff"
	starterDark       = "#18181b"
	starterBackground = "palette-gray-50"
)

type initOptions struct {
	Path  string
	Name  string
	Force bool
}

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Create a starter design-system document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			if strings.TrimSpace(opts.Name) == "" {
				opts.Name = deriveNameFromPath(opts.Path)
			}
			if err := runInit(opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", opts.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Design system name (defaults to the file name)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(opts initOptions) error {
	if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
		return newCommandError("create document", opts.Path, errors.New("file already exists"), "pass --force to overwrite it")
	}

	doc, err := starterDocument(opts.Name)
	if err != nil {
		return newCommandError("create document", opts.Path, err, "")
	}
	if err := config.WriteDocument(opts.Path, doc); err != nil {
		return newCommandError("create document", opts.Path, err, "check that the directory is writable")
	}
	return nil
}

func starterDocument(name string) (*designsystem.Document, error) {
	gray, err := theme.GeneratePalette(theme.GenerateRequest{
		Seed:   starterSeed,
		Name:   "gray",
		Steps:  starterSteps,
		Naming: designsystem.NamingHundredsWithHalves,
	})
	if err != nil {
		return nil, err
	}

	palettes := []designsystem.Palette{gray}
	tokens, err := semantic.Assign(semantic.Request{
		BackgroundToken: starterBackground,
		Palettes:        palettes,
	})
	if err != nil {
		return nil, err
	}

	return &designsystem.Document{
		Version: "1.0.0",
		Metadata: designsystem.Metadata{
			ID:   uuid.NewString(),
			Name: name,
		},
		Palettes:          palettes,
		IndependentColors: designsystem.IndependentColors{White: starterLight},
		Themes: designsystem.Themes{
			Main:   &designsystem.Theme{Name: "light", Background: starterLight},
			Others: []designsystem.Theme{{Name: "dark", Background: starterDark}},
		},
		Semantic: tokens,
		Shadows: []designsystem.ShadowSource{
			{Name: "soft", Value: "0px 1px 3px rgba(0, 0, 0, 0.1), 0px 1px 2px rgba(0, 0, 0, 0.06)"},
		},
	}, nil
}

func deriveNameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return strings.TrimSpace(base)
}
