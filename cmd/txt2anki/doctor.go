package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/doctor"
	"github.com/example/go-txt2anki/internal/tokenize"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tokenizer environment is usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			result := doctor.Run(doctorConfig(cfg), cmd.OutOrStdout())
			if result.Failed() {
				return fmt.Errorf("%d check(s) failed", len(result.Failures()))
			}
			return nil
		},
	}
}

// doctorConfig maps the loaded configuration onto doctor checks. The analysis
// probe runs the real tokenizer against a short sample sentence.
func doctorConfig(cfg config.Config) doctor.Config {
	return doctor.Config{
		Mode:     cfg.Tokenizer.Mode,
		Dict:     cfg.Tokenizer.Dict,
		DictPath: cfg.Tokenizer.DictPath,
		UserDict: cfg.Tokenizer.UserDict,
		Probe: func() (int, error) {
			tok, err := newTokenizerFromConfig(cfg)
			if err != nil {
				return 0, err
			}
			tokens, err := tok.TokenizeWith("今日は晴れです。", tokenize.Options{SkipFilters: true})
			if err != nil {
				return 0, err
			}
			return len(tokens), nil
		},
	}
}
