package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/export"
	"github.com/alexisbeaulieu97/swatchy/internal/gitsync"
)

type exportOptions struct {
	ConfigPath string
	OutDir     string
	Format     string
	Commit     bool
	Message    string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write CSS custom properties and Token-Studio tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to design-system document")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&opts.Format, "format", string(export.FormatAll), "Export format: css, tokens or all")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit the written files to the enclosing git repository")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Commit message (defaults to one naming the design system)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, opts exportOptions) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return newCommandError("export", opts.Format, err, "use --format css, tokens or all")
	}

	doc, err := loadDocument(opts.ConfigPath)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	files, err := export.Render(ctx, doc, format, log)
	if err != nil {
		return newCommandError("export", opts.ConfigPath, err, "run 'swatchy recolor' on the failing theme for details")
	}

	paths, err := export.WriteFiles(opts.OutDir, files)
	if err != nil {
		return newCommandError("export", opts.OutDir, err, "check that the output directory is writable")
	}

	w := cmd.OutOrStdout()
	for i, path := range paths {
		fmt.Fprintf(w, "wrote %s (%s)\n", path, humanize.Bytes(uint64(len(files[i].Data))))
	}
	log.ForPath(opts.OutDir).Debug("export complete", "files", len(paths))

	if !opts.Commit {
		return nil
	}

	message := opts.Message
	if message == "" {
		message = fmt.Sprintf("Update %s design tokens", doc.Metadata.Name)
	}
	result, err := gitsync.Commit(gitsync.CommitRequest{Dir: opts.OutDir, Paths: paths, Message: message})
	if err != nil {
		suggestion := "run 'git init' in the output directory or drop --commit"
		if errors.Is(err, gitsync.ErrUnrelatedChanges) {
			suggestion = "commit or unstage the other changes first"
		}
		return newCommandError("commit export", opts.OutDir, err, suggestion)
	}
	if result.Committed {
		fmt.Fprintf(w, "committed %s\n", result.Hash.String()[:7])
	} else {
		fmt.Fprintln(w, "nothing to commit")
	}
	return nil
}
