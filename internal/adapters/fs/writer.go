// Package fs writes rendered source entries to a sources.list.d directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Permissions of written entries and created directories.
const (
	FilePerm = 0o644
	DirPerm  = 0o755
)

var _ ports.EntryWriter = (*Writer)(nil)

// Writer implements ports.EntryWriter on a local directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer placing entries in dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the target directory.
func (w *Writer) Dir() string { return w.dir }

// Write replaces the entry file atomically when its content differs, or
// removes it when the entry is absent.
func (w *Writer) Write(ctx context.Context, entry domain.SourceEntry) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path := filepath.Join(w.dir, entry.Filename)
	if entry.Ensure == domain.EnsureAbsent {
		return w.remove(path)
	}

	current, exists, err := HashFile(path)
	if err != nil {
		return false, err
	}
	if exists && current == HashContent(entry.Content) {
		return false, nil
	}

	if err := writeAtomic(path, []byte(entry.Content)); err != nil {
		return false, zerr.With(fmt.Errorf("%w: %w", domain.ErrEntryWriteFailed, err), "path", path)
	}
	return true, nil
}

func (w *Writer) remove(path string) (bool, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(fmt.Errorf("%w: %w", domain.ErrEntryRemoveFailed, err), "path", path)
	}
}

// writeAtomic writes data to a temporary file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
