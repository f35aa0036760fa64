package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/tokenize"
)

func newDictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List the available dictionary variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			return writeDictList(cmd.OutOrStdout(), cfg)
		},
	}
}

// writeDictList prints the built-in variants and marks the one the current
// configuration selects. A dictionary file override displaces the built-ins.
func writeDictList(w io.Writer, cfg config.Config) error {
	for _, name := range tokenize.Variants() {
		marker := " "
		if name == cfg.Tokenizer.Dict && cfg.Tokenizer.DictPath == "" {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s\t%s\n", marker, name, tokenize.VariantNote(name)); err != nil {
			return err
		}
	}
	if cfg.Tokenizer.DictPath != "" {
		if _, err := fmt.Fprintf(w, "* file\t%s\n", cfg.Tokenizer.DictPath); err != nil {
			return err
		}
	}
	return nil
}
