package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/zerr"
)

// HashFile computes the XXHash of a file's content. A missing file reports
// exists=false and no error.
func HashFile(path string) (sum uint64, exists bool, err error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(fmt.Errorf("%w: %w", domain.ErrEntryReadFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, false, zerr.With(fmt.Errorf("%w: %w", domain.ErrEntryReadFailed, err), "path", path)
	}

	return hasher.Sum64(), true, nil
}

// HashContent computes the XXHash of rendered content.
func HashContent(content string) uint64 {
	return xxhash.Sum64String(content)
}
