package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/go-txt2anki/internal/config"
)

func TestRunConvert_PrintsFixedLines(t *testing.T) {
	var buf bytes.Buffer
	if err := runConvert(&buf); err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	want := "Converting text to Anki deck format...\nConversion complete!\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestConvertCmd_Execute(t *testing.T) {
	t.Cleanup(func() { activeCfg = config.Config{} })

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"convert"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Converting text to Anki deck format...") {
		t.Errorf("missing starting message in %q", out)
	}
	if !strings.Contains(out, "Conversion complete!") {
		t.Errorf("missing completion message in %q", out)
	}
}
