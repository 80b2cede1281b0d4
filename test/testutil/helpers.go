// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ProjectRoot returns the repository root directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// DataFile returns the path of a file under the data directory and fails
// the test if it does not exist.
func DataFile(t *testing.T, name string) string {
	t.Helper()
	return mustExist(t, filepath.Join(ProjectRoot(t), "data", name))
}

// CriteriaFile returns the path of the example criteria catalog.
func CriteriaFile(t *testing.T) string {
	t.Helper()
	return mustExist(t, filepath.Join(ProjectRoot(t), "criteria.example.yaml"))
}

// TempDBPath returns a database path inside a per-test temporary directory.
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "destinations.db")
}

func mustExist(t *testing.T, path string) string {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Failed to find test file %s: %v", path, err)
	}
	return path
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
