package restyutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	out.Write("1", "---- REQUEST ----")

	entries, err := os.ReadDir(out.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "1.txt", entries[0].Name())

	contents, err := os.ReadFile(filepath.Join(out.Dir(), "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "---- REQUEST ----", string(contents))
}
