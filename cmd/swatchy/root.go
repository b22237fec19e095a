package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatchy",
		Short:         "Swatchy builds themed palettes, semantic tokens and shadows from a design-system document",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newRecolorCmd())
	cmd.AddCommand(newSemanticCmd())
	cmd.AddCommand(newShadowsCmd())
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandLogger(root *rootFlags, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Console: true, Writer: w})
	if err != nil {
		return nil, err
	}
	return log.ForComponent("cli"), nil
}
