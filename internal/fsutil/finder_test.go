package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("ksiN = 1.0\n"), 0o600))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.priors"))
	touch(t, filepath.Join(dir, "nested", "a.priors"))
	touch(t, filepath.Join(dir, "notes.txt"))

	files, err := FindFilesByExtension(dir, PriorFileExtension)
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Sorted output keeps load order deterministic across platforms.
	assert.Equal(t, filepath.Join(dir, "b.priors"), files[0])
	assert.Equal(t, filepath.Join(dir, "nested", "a.priors"), files[1])
}

func TestFindFilesByExtensionEmptyExtension(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), "")
	require.Error(t, err)
}

func TestResolvePriorFiles(t *testing.T) {
	t.Parallel()

	t.Run("regular file resolves to itself", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "grb.priors")
		touch(t, path)

		files, err := ResolvePriorFiles(path)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("directory without prior files fails", func(t *testing.T) {
		_, err := ResolvePriorFiles(t.TempDir())
		require.Error(t, err)
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, err := ResolvePriorFiles(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
	})
}
