package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/export"
	"github.com/alexisbeaulieu97/swatchy/pkg/diff"
)

var errDrift = errors.New("exported files are out of date")

type verifyOptions struct {
	ConfigPath string
	OutDir     string
	Format     string
}

type drift struct {
	Name  string
	Diff  string
	Stats diff.Stats
	Hint  string
}

func newVerifyCmd(root *rootFlags) *cobra.Command {
	opts := verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that exported files match the document",
		Long: `Verify renders the document in memory and compares the result with the files
in the output directory. It prints a unified diff for every drifted file and
fails when any file is missing or different.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to design-system document")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".", "Directory holding the exported files")
	cmd.Flags().StringVar(&opts.Format, "format", string(export.FormatAll), "Export format to check: css, tokens or all")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runVerify(cmd *cobra.Command, root *rootFlags, opts verifyOptions) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return newCommandError("verify", opts.Format, err, "use --format css, tokens or all")
	}

	doc, err := loadDocument(opts.ConfigPath)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	files, err := export.Render(context.Background(), doc, format, log)
	if err != nil {
		return newCommandError("verify", opts.ConfigPath, err, "")
	}

	drifts, err := collectDrift(doc, opts.OutDir, files)
	if err != nil {
		return newCommandError("verify", opts.OutDir, err, "")
	}

	w := cmd.OutOrStdout()
	if len(drifts) == 0 {
		fmt.Fprintf(w, "✅ %d file(s) up to date\n", len(files))
		return nil
	}

	printDrift(w, drifts)
	return newCommandError("verify", opts.OutDir, errDrift, fmt.Sprintf("run 'swatchy export -c %s -o %s'", opts.ConfigPath, opts.OutDir))
}

func collectDrift(doc *designsystem.Document, dir string, files []export.File) ([]drift, error) {
	var drifts []drift
	for _, file := range files {
		path := filepath.Join(dir, file.Name)
		existing, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, drift{Name: file.Name, Hint: "missing"})
			continue
		}
		if err != nil {
			return nil, err
		}

		out, stats := diff.Compare(existing, file.Data, path, file.Name+" (rendered)")
		if out == "" {
			continue
		}
		d := drift{Name: file.Name, Diff: out, Stats: stats}
		if file.Name == export.CSSFileName {
			d.Hint = fingerprintHint(doc, existing)
		}
		drifts = append(drifts, d)
	}
	return drifts, nil
}

func fingerprintHint(doc *designsystem.Document, existing []byte) string {
	recorded, ok := export.ReadFingerprint(existing)
	if !ok {
		return "no fingerprint header"
	}
	current, err := export.Fingerprint(doc)
	if err != nil {
		return ""
	}
	if recorded == current {
		return "edited by hand since the last export"
	}
	return "document changed since the last export"
}

func printDrift(w io.Writer, drifts []drift) {
	for _, d := range drifts {
		if d.Diff == "" {
			fmt.Fprintf(w, "❌ %s: %s\n", d.Name, d.Hint)
			continue
		}
		summary := fmt.Sprintf("+%d -%d", d.Stats.Added, d.Stats.Removed)
		if d.Hint != "" {
			summary += ", " + d.Hint
		}
		fmt.Fprintf(w, "❌ %s (%s)\n%s\n", d.Name, summary, d.Diff)
	}
}
