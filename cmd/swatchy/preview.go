package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatchy/internal/export"
	"github.com/alexisbeaulieu97/swatchy/internal/tui"
)

type previewOptions struct {
	ConfigPath     string
	NonInteractive bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse themes, palettes and contrast in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.NonInteractive {
				opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))
			}
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to design-system document")
	cmd.Flags().BoolVar(&opts.NonInteractive, "plain", false, "Print a plain listing instead of the interactive browser")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	doc, err := loadDocument(opts.ConfigPath)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sets, err := export.BuildThemeSets(context.Background(), doc, log)
	if err != nil {
		return newCommandError("preview", opts.ConfigPath, err, "")
	}

	if opts.NonInteractive {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(doc, sets))
		return nil
	}

	program := tea.NewProgram(tui.NewModel(doc, sets), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return newCommandError("preview", opts.ConfigPath, err, "retry with --plain")
	}
	return nil
}
