// Package doctor provides environment preflight checks for txt2anki.
package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-txt2anki/internal/tokenize"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// AnalyzeProbe tokenizes a sample sentence with the configured settings and
// reports how many morphemes came back.
type AnalyzeProbe func() (int, error)

// Config holds the settings and injectable probes for each doctor check.
type Config struct {
	// Mode is the configured segmentation mode spelling.
	Mode string
	// Dict is the configured dictionary variant name.
	Dict string
	// DictPath optionally points at a compiled dictionary file. When set it
	// displaces the variant check.
	DictPath string
	// UserDict optionally points at a user dictionary CSV.
	UserDict string
	// Probe runs a sample analysis. Nil skips the analysis check.
	Probe AnalyzeProbe
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- segmentation mode ------------------------------------------------
	mode, err := tokenize.ParseMode(cfg.Mode)
	if err != nil {
		res.fail(fmt.Sprintf("segmentation mode: %v", err))
		fmt.Fprintf(w, "%s segmentation mode: %v\n", FailMark, err)
	} else {
		fmt.Fprintf(w, "%s segmentation mode: %s\n", PassMark, mode)
	}

	// ---- dictionary -------------------------------------------------------
	if cfg.DictPath != "" {
		if err := checkFile(cfg.DictPath); err != nil {
			res.fail(fmt.Sprintf("dictionary file %q: %v", cfg.DictPath, err))
			fmt.Fprintf(w, "%s dictionary file %s: %v\n", FailMark, cfg.DictPath, err)
		} else {
			fmt.Fprintf(w, "%s dictionary file: %s\n", PassMark, cfg.DictPath)
		}
	} else if note := tokenize.VariantNote(cfg.Dict); note == "" {
		msg := fmt.Sprintf("unknown variant %q (available: %s)", cfg.Dict, strings.Join(tokenize.Variants(), ", "))
		res.fail("dictionary: " + msg)
		fmt.Fprintf(w, "%s dictionary: %s\n", FailMark, msg)
	} else {
		fmt.Fprintf(w, "%s dictionary: %s (%s)\n", PassMark, cfg.Dict, note)
	}

	// ---- user dictionary --------------------------------------------------
	if cfg.UserDict != "" {
		if err := checkFile(cfg.UserDict); err != nil {
			res.fail(fmt.Sprintf("user dictionary %q: %v", cfg.UserDict, err))
			fmt.Fprintf(w, "%s user dictionary %s: %v\n", FailMark, cfg.UserDict, err)
		} else {
			fmt.Fprintf(w, "%s user dictionary: %s\n", PassMark, cfg.UserDict)
		}
	}

	// ---- analysis ---------------------------------------------------------
	if cfg.Probe != nil {
		n, err := cfg.Probe()
		switch {
		case err != nil:
			res.fail(fmt.Sprintf("analysis: %v", err))
			fmt.Fprintf(w, "%s analysis: %v\n", FailMark, err)
		case n == 0:
			res.fail("analysis: sample sentence produced no morphemes")
			fmt.Fprintf(w, "%s analysis: sample sentence produced no morphemes\n", FailMark)
		default:
			fmt.Fprintf(w, "%s analysis: %d morphemes from the sample sentence\n", PassMark, n)
		}
	}

	return res
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file")
	}
	return nil
}
