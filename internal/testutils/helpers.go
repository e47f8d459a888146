package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDefinition writes a definition document into a fresh temporary
// directory and returns its absolute path. Leading tabs in content are
// stripped, so callers can indent YAML inside raw string literals.
// It fails the test immediately on error.
func WriteDefinition(t *testing.T, name, content string) string {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(Dedent(content)), 0o644), "Failed to write definition")
	return path
}

// Dedent removes leading tab characters from every line of s.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "\t")
	}
	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}

// WriteFile overwrites path with content.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write file")
}
