package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/semantic"
)

type semanticOptions struct {
	ConfigPath string
	Background string
	Write      bool
}

func newSemanticCmd() *cobra.Command {
	opts := semanticOptions{}

	cmd := &cobra.Command{
		Use:   "semantic",
		Short: "Assign text and border tokens for a background token",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(opts.ConfigPath)
			if err != nil {
				return err
			}

			tokens, err := runSemantic(doc, opts)
			if err != nil {
				return err
			}

			if opts.Write {
				doc.Semantic = tokens
				if err := config.WriteDocument(opts.ConfigPath, doc); err != nil {
					return newCommandError("save semantic tokens", opts.ConfigPath, err, "")
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Updated %s\n", opts.ConfigPath)
			}
			return printYAML(cmd.OutOrStdout(), tokens)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to design-system document")
	cmd.Flags().StringVar(&opts.Background, "background", "", "Background token, e.g. palette-gray-50 (defaults to the document's)")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Store the assignment in the document")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runSemantic(doc *designsystem.Document, opts semanticOptions) (designsystem.SemanticTokens, error) {
	background := opts.Background
	if background == "" {
		background = doc.Semantic.Background
	}
	if background == "" {
		return designsystem.SemanticTokens{}, newCommandError("assign semantic tokens", opts.ConfigPath,
			fmt.Errorf("no background token"), "pass --background palette-<palette>-<tint>")
	}

	tokens, err := semantic.Assign(semantic.Request{BackgroundToken: background, Palettes: doc.Palettes})
	if err != nil {
		return tokens, newCommandError("assign semantic tokens", background, err, "reference an existing palette tint")
	}
	return tokens, nil
}
