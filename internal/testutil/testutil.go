// Package testutil provides small helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates name under dir with the given content and returns the
// full path. Intended for use with t.TempDir, which handles cleanup.
func WriteFile(tb testing.TB, dir, name string, content []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, content, 0o644)
	if err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}

	return path
}
