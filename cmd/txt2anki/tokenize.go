package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/morph"
	"github.com/example/go-txt2anki/internal/tokenize"
)

func newTokenizeCmd() *cobra.Command {
	var (
		inputText string
		inputFile string
		asJSON    bool
		partial   bool
		noFilters bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize Japanese text and print the morphemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if (inputText == "") == (inputFile == "") {
				return fmt.Errorf("exactly one of --text or --file is required")
			}

			tok, err := newTokenizerFromConfig(cfg)
			if err != nil {
				return err
			}

			opts := tokenize.Options{AllowPartial: partial, SkipFilters: noFilters}
			var tokens []morph.Token
			if inputFile != "" {
				tokens, err = tok.TokenizeFileWith(inputFile, opts)
			} else {
				tokens, err = tok.TokenizeWith(inputText, opts)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeTokensJSON(cmd.OutOrStdout(), tokens)
			}
			return writeTokensTable(cmd.OutOrStdout(), tokens)
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to tokenize")
	cmd.Flags().StringVar(&inputFile, "file", "", "UTF-8 text file to tokenize")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit tokens as JSON")
	cmd.Flags().BoolVar(&partial, "partial", false, "Skip morphemes that cannot be converted")
	cmd.Flags().BoolVar(&noFilters, "no-filters", false, "Bypass the configured token filters")

	return cmd
}

// newTokenizerFromConfig maps the loaded configuration onto façade options.
func newTokenizerFromConfig(cfg config.Config) (*tokenize.Tokenizer, error) {
	mode, err := tokenize.ParseMode(cfg.Tokenizer.Mode)
	if err != nil {
		return nil, err
	}

	opts := []tokenize.Option{
		tokenize.WithMode(mode),
		tokenize.WithDict(cfg.Tokenizer.Dict),
	}
	if cfg.Tokenizer.Shrink {
		opts = append(opts, tokenize.WithShrink())
	}
	if cfg.Tokenizer.DictPath != "" {
		opts = append(opts, tokenize.WithDictFile(cfg.Tokenizer.DictPath))
	}
	if cfg.Tokenizer.UserDict != "" {
		opts = append(opts, tokenize.WithUserDict(cfg.Tokenizer.UserDict))
	}
	if !cfg.Tokenizer.RequireJapanese {
		opts = append(opts, tokenize.WithoutJapaneseCheck())
	}
	if cfg.Filters.Particles {
		opts = append(opts, tokenize.WithFilters(morph.ParticleFilter{}))
	}
	if cfg.Filters.Punctuation {
		opts = append(opts, tokenize.WithFilters(morph.PunctuationFilter{}))
	}

	return tokenize.New(opts...)
}

func writeTokensJSON(w io.Writer, tokens []morph.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokens)
}

func writeTokensTable(w io.Writer, tokens []morph.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SURFACE\tPOS\tDICT FORM\tREADING\tOFFSET")
	for _, token := range tokens {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			token.Surface, token.PartOfSpeech, token.DictionaryForm(), token.Reading, token.Position)
	}
	return tw.Flush()
}
