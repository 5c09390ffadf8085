package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banjoutils/banjo/pkg/fsutil"
)

type config struct {
	Name  string `json:"name" yaml:"name"`
	Port  int    `json:"port" yaml:"port"`
	Debug bool   `json:"debug" yaml:"debug"`
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.True(t, fsutil.Exists(path))
	require.True(t, fsutil.Exists(dir))
	require.False(t, fsutil.Exists(filepath.Join(dir, "missing")))
}

func TestIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.True(t, fsutil.IsDir(dir))
	require.False(t, fsutil.IsDir(path))
	require.False(t, fsutil.IsDir(filepath.Join(dir, "missing")))
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, fsutil.EnsureDir(dir))
	require.True(t, fsutil.IsDir(dir))

	// Existing directory is fine.
	require.NoError(t, fsutil.EnsureDir(dir))
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content and permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, fsutil.WriteFileAtomic(path, []byte("hello"), 0o600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
		require.NoError(t, fsutil.WriteFileAtomic(path, []byte("x"), 0o644))
		require.True(t, fsutil.Exists(path))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, fsutil.WriteFileAtomic(path, []byte("x"), 0o644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	want := config{Name: "svc", Port: 8080, Debug: true}

	require.NoError(t, fsutil.WriteJSON(path, want))

	var got config
	require.NoError(t, fsutil.ReadJSON(path, &got))
	require.Equal(t, want, got)
}

func TestReadJSON_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var got config
	err := fsutil.ReadJSON(path, &got)
	require.ErrorIs(t, err, fsutil.ErrDecode)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	want := config{Name: "svc", Port: 8080}

	require.NoError(t, fsutil.WriteYAML(path, want))

	var got config
	require.NoError(t, fsutil.ReadYAML(path, &got))
	require.Equal(t, want, got)
}

func TestReadYAML_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o644))

	var got config
	err := fsutil.ReadYAML(path, &got)
	require.ErrorIs(t, err, fsutil.ErrDecode)
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()

	var got config
	err := fsutil.ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &got)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, fsutil.ErrDecode)
}
