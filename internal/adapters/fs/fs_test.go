package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aptsrc/internal/adapters/fs"
	"go.trai.ch/aptsrc/internal/core/domain"
)

func entry(content string) domain.SourceEntry {
	return domain.SourceEntry{
		ID:       "list-my_source",
		Name:     "my_source",
		Format:   domain.FormatList,
		Ensure:   domain.EnsurePresent,
		Filename: "my_source.list",
		Content:  content,
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sources.list.d")
	w := fs.NewWriter(dir)
	ctx := context.Background()

	changed, err := w.Write(ctx, entry("deb hello.there stretch main\n"))
	require.NoError(t, err)
	assert.True(t, changed, "new file")

	path := filepath.Join(dir, "my_source.list")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "deb hello.there stretch main\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fs.FilePerm), info.Mode().Perm())

	changed, err = w.Write(ctx, entry("deb hello.there stretch main\n"))
	require.NoError(t, err)
	assert.False(t, changed, "identical content")

	changed, err = w.Write(ctx, entry("deb hello.there sid main\n"))
	require.NoError(t, err)
	assert.True(t, changed, "updated content")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestWriter_WriteAbsent(t *testing.T) {
	dir := t.TempDir()
	w := fs.NewWriter(dir)
	ctx := context.Background()

	absent := entry("")
	absent.Ensure = domain.EnsureAbsent

	changed, err := w.Write(ctx, absent)
	require.NoError(t, err)
	assert.False(t, changed, "nothing to remove")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "my_source.list"), []byte("old"), 0o600))

	changed, err = w.Write(ctx, absent)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoFileExists(t, filepath.Join(dir, "my_source.list"))
}

func TestWriter_WriteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewWriter(t.TempDir()).Write(ctx, entry("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.list")

	_, exists, err := fs.HashFile(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("Types: deb\n"), 0o600))
	sum, exists, err := fs.HashFile(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, fs.HashContent("Types: deb\n"), sum)
}

func TestHashFile_ReadError(t *testing.T) {
	dir := t.TempDir()

	_, _, err := fs.HashFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryReadFailed)
}

func TestWriter_WriteIntoFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	_, err := fs.NewWriter(parent).Write(context.Background(), entry("deb hello.there stretch main\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryReadFailed)
	assert.ErrorIs(t, err, syscall.ENOTDIR)
}
