package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/go-txt2anki/internal/bench"
	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/tokenize"
)

// benchSampleText is long enough that per-run timings are not pure noise.
const benchSampleText = "吾輩は猫である。名前はまだ無い。どこで生れたかとんと見当がつかぬ。" +
	"何でも薄暗いじめじめした所でニャーニャー泣いていた事だけは記憶している。"

func newBenchCmd() *cobra.Command {
	var (
		text          string
		runs          int
		format        string
		rateThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark tokenization latency and throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(text) == "" {
				text = benchSampleText
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			results, err := runTokenizeBench(cfg, text, runs)
			if err != nil {
				return err
			}

			durations := make([]time.Duration, len(results))
			for i, r := range results {
				durations[i] = r.Duration
			}
			stats := bench.ComputeStats(durations)

			switch format {
			case "json":
				bench.FormatJSON(results, stats, cmd.OutOrStdout())
			default:
				bench.FormatTable(results, stats, cmd.OutOrStdout())
			}

			var totalRate float64
			for _, r := range results {
				totalRate += r.Rate
			}
			return bench.CheckRateThreshold(totalRate/float64(len(results)), rateThreshold)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to tokenize for each run (defaults to a built-in sample)")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of analysis runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().Float64Var(&rateThreshold, "rate-threshold", 0,
		"Exit non-zero if mean tokens/s falls below this value (0 = disabled)")

	return cmd
}

// runTokenizeBench times repeated analyses of text. The first run constructs
// the tokenizer and therefore pays the dictionary load; it is marked cold.
func runTokenizeBench(cfg config.Config, text string, runs int) ([]bench.RunResult, error) {
	results := make([]bench.RunResult, 0, runs)

	var tok *tokenize.Tokenizer
	for i := range runs {
		start := time.Now()
		if tok == nil {
			var err error
			if tok, err = newTokenizerFromConfig(cfg); err != nil {
				return nil, fmt.Errorf("run %d failed: %w", i+1, err)
			}
		}
		tokens, err := tok.TokenizeWith(text, tokenize.Options{SkipFilters: true})
		if err != nil {
			return nil, fmt.Errorf("run %d failed: %w", i+1, err)
		}
		dur := time.Since(start)

		results = append(results, bench.RunResult{
			Index:    i,
			Cold:     i == 0,
			Duration: dur,
			Tokens:   len(tokens),
			Rate:     bench.CalcRate(len(tokens), dur),
		})
	}

	return results, nil
}
