// Package testutil holds helpers shared by focusring tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/focusring/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output in testdata/<name>.golden. A nil output asserts that no
// golden file exists.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(p), osutil.DirPermission); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return p
}
