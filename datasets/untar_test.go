package datasets_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/datasets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseName(t *testing.T) {
	assert.Equal(t, "foo", datasets.BaseName("foo.tar.gz"))
	assert.Equal(t, "foo", datasets.BaseName("/some/path/foo.tar.gz"))
	assert.Equal(t, "foo", datasets.BaseName("foo.tgz"))
	assert.Equal(t, "foo", datasets.BaseName("foo.zip"))
	assert.Equal(t, "foo", datasets.BaseName("foo.tar"))
	assert.Equal(t, "foo.bar", datasets.BaseName("foo.bar.tar.gz"))
	assert.Equal(t, "foo", datasets.BaseName("foo"))
}

func TestUntarCreatesNamedFolder(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "foo.tar.gz")
	makeArchive(t, archive, []archiveEntry{
		{name: "a.txt", body: "hello"},
		{name: "sub/b.txt", body: "world"},
	})

	dest := t.TempDir()
	target, err := datasets.Untar(archive, dest)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dest, "foo"), target)

	a, err := os.ReadFile(filepath.Join(target, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(a))

	b, err := os.ReadFile(filepath.Join(target, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(b))
}

func TestUntarSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "dirs.tgz")
	makeArchive(t, archive, []archiveEntry{
		{name: "empty-dir/", body: ""},
		{name: "only.txt", body: "x"},
	})

	target, err := datasets.Untar(archive, t.TempDir())
	require.NoError(t, err)

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUntarRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.tar.gz")
	makeArchive(t, archive, []archiveEntry{
		{name: "../escape.txt", body: "nope"},
	})

	_, err := datasets.Untar(archive, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnsafeArchivePath))
}

func TestUntarGarbage(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "junk.tar.gz")
	require.NoError(t, os.WriteFile(archive, []byte("not gzip at all"), 0o644))

	_, err := datasets.Untar(archive, t.TempDir())
	assert.Error(t, err)
}
