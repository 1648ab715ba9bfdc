// Package fsutil holds small filesystem helpers.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating output directory")
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", dir).
			Wrapf(err, "creating temporary file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, writeErr := tempFile.Write(data); writeErr != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(writeErr, "writing temporary file")
	}

	if closeErr := tempFile.Close(); closeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(closeErr, "closing temporary file")
	}

	if chmodErr := os.Chmod(tempPath, perm); chmodErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(chmodErr, "setting file mode")
	}

	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("from", tempPath).
			With("to", path).
			Wrapf(renameErr, "replacing %q", path)
	}

	return nil
}
