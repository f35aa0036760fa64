// Package bench provides benchmarking primitives for the txt2anki bench command.
package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Run result and stats
// ---------------------------------------------------------------------------

// RunResult holds the timing and token count for a single analysis run.
type RunResult struct {
	Index    int
	Cold     bool // true for the first run, which pays the dictionary load
	Duration time.Duration
	Tokens   int
	Rate     float64 // tokens per second
}

// Stats holds aggregate timing statistics across all runs.
type Stats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// ComputeStats calculates min, max and mean over a slice of durations.
// The slice must be non-empty.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}
	mn, mx := durations[0], durations[0]
	var sum time.Duration
	for _, d := range durations {
		if d < mn {
			mn = d
		}
		if d > mx {
			mx = d
		}
		sum += d
	}
	return Stats{
		Min:  mn,
		Max:  mx,
		Mean: sum / time.Duration(len(durations)),
	}
}

// ---------------------------------------------------------------------------
// Throughput helpers
// ---------------------------------------------------------------------------

// CalcRate returns tokens / analysis_duration in tokens per second.
// Returns 0 if dur is zero to avoid division by zero.
func CalcRate(tokens int, dur time.Duration) float64 {
	if dur <= 0 {
		return 0
	}
	return float64(tokens) / dur.Seconds()
}

// ---------------------------------------------------------------------------
// Throughput threshold gate
// ---------------------------------------------------------------------------

// CheckRateThreshold returns an error if meanRate < threshold.
// A threshold of 0 disables the gate.
func CheckRateThreshold(meanRate, threshold float64) error {
	if threshold <= 0 {
		return nil
	}
	if meanRate < threshold {
		return fmt.Errorf("mean rate %.1f tokens/s below threshold %.1f", meanRate, threshold)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Output formatters
// ---------------------------------------------------------------------------

// durMS keeps fractional milliseconds. Warm analysis runs finish well under
// a millisecond, so truncating would render them all as zero.
func durMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// FormatTable writes a human-readable ASCII table of bench results to w.
func FormatTable(runs []RunResult, stats Stats, w io.Writer) {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%-5s  %-5s  %10s  %8s  %10s\n", "Run", "Cold", "MS", "Tokens", "Tok/s")
	fmt.Fprintln(sb, strings.Repeat("-", 46))

	for _, r := range runs {
		cold := ""
		if r.Cold {
			cold = "yes"
		}
		fmt.Fprintf(sb, "%-5d  %-5s  %10.3f  %8d  %10.1f\n",
			r.Index+1,
			cold,
			durMS(r.Duration),
			r.Tokens,
			r.Rate,
		)
	}

	fmt.Fprintln(sb, strings.Repeat("-", 46))
	fmt.Fprintf(sb, "%-5s  %-5s  %10.3f  %8s  %10s  (min)\n", "", "", durMS(stats.Min), "", "")
	fmt.Fprintf(sb, "%-5s  %-5s  %10.3f  %8s  %10s  (mean)\n", "", "", durMS(stats.Mean), "", "")
	fmt.Fprintf(sb, "%-5s  %-5s  %10.3f  %8s  %10s  (max)\n", "", "", durMS(stats.Max), "", "")

	fmt.Fprint(w, sb.String())
}

// jsonReport is the top-level JSON structure emitted by FormatJSON.
type jsonReport struct {
	Runs  []jsonRun `json:"runs"`
	Stats jsonStats `json:"stats"`
}

type jsonRun struct {
	Index      int     `json:"index"`
	Cold       bool    `json:"cold"`
	DurationMS float64 `json:"duration_ms"`
	Tokens     int     `json:"tokens"`
	Rate       float64 `json:"tokens_per_sec"`
}

type jsonStats struct {
	MinMS  float64 `json:"min_ms"`
	MeanMS float64 `json:"mean_ms"`
	MaxMS  float64 `json:"max_ms"`
}

// FormatJSON writes a JSON report of bench results to w.
func FormatJSON(runs []RunResult, stats Stats, w io.Writer) {
	jr := jsonReport{
		Runs: make([]jsonRun, len(runs)),
		Stats: jsonStats{
			MinMS:  durMS(stats.Min),
			MeanMS: durMS(stats.Mean),
			MaxMS:  durMS(stats.Max),
		},
	}
	for i, r := range runs {
		jr.Runs[i] = jsonRun{
			Index:      r.Index,
			Cold:       r.Cold,
			DurationMS: durMS(r.Duration),
			Tokens:     r.Tokens,
			Rate:       r.Rate,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(jr)
}
