// Package testutils provides helpers for tests.
package testutils

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ResetEnv unsets all environment variables, other than those named in keep,
// for the duration of a test.
func ResetEnv(t *testing.T, keep ...string) {
	t.Helper()

	for _, env := range os.Environ() {
		k, v, _ := strings.Cut(env, "=")
		if slices.Contains(keep, k) {
			continue
		}
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			os.Setenv(k, v)
		})
	}
}

// ChTempDir changes the working directory to a new temporary directory for
// the duration of a test, returning the directory.
func ChTempDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
	return dir
}
