package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/go-txt2anki/internal/config"
	"github.com/example/go-txt2anki/internal/tokenize"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := map[string]bool{"convert": false, "tokenize": false, "dicts": false, "doctor": false, "bench": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	flags := NewRootCmd().PersistentFlags()

	for _, name := range []string{"config", "tokenizer-mode", "tokenizer-dict", "log-level"} {
		if flags.Lookup(name) == nil {
			t.Errorf("persistent flag %s not registered", name)
		}
	}
}

func TestRequireConfig(t *testing.T) {
	t.Cleanup(func() { activeCfg = config.Config{} })

	activeCfg = config.Config{}
	if _, err := requireConfig(); err == nil {
		t.Fatal("expected error when no configuration is loaded")
	}

	activeCfg = config.DefaultConfig()
	cfg, err := requireConfig()
	if err != nil {
		t.Fatalf("requireConfig: %v", err)
	}
	if cfg.Tokenizer.Dict != "ipa" {
		t.Fatalf("unexpected dict %q", cfg.Tokenizer.Dict)
	}
}

func TestSetupLogger_AcceptsAnyLevel(t *testing.T) {
	t.Cleanup(func() { tokenize.Logger = zerolog.Nop() })

	for _, level := range []string{"trace", "debug", "info", "warn", "error", "", "not-a-level"} {
		setupLogger(level)
	}
}

func TestPrintError_RendersHints(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &tokenize.FileError{
		Path:     "notes.txt",
		Reason:   tokenize.ReasonEncoding,
		Encoding: "Shift_JIS",
	})

	out := buf.String()
	if !strings.Contains(out, "Error:") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, "hint:") || !strings.Contains(out, "iconv") {
		t.Errorf("missing remediation hint in %q", out)
	}
}
