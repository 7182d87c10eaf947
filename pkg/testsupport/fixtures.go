// Package testsupport holds shared fixtures and golden-file helpers for
// contract tests across the repository.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/j0KZ/synthlab/pkg/patchspec"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// LoadSpec reads a patch document fixture, failing the test on error.
func LoadSpec(t *testing.T, path string) *patchspec.Spec {
	t.Helper()

	spec, err := patchspec.Load(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	return spec
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
