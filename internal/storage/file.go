// filepath: internal/storage/file.go
// Package storage validates untrusted uploads and commits them below a fixed
// upload root.
// This file handles writing the validated bytes.
package storage

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// WriteFile writes data to a path that must not exist yet.
// O_EXCL also refuses to follow a symlink planted at the final component.
// If the write fails after the file was created, the file is removed again.
func WriteFile(fsys afero.Fs, path string, data []byte) (int64, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("could not create file: %w", err)
	}

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		_ = fsys.Remove(path)
		return 0, fmt.Errorf("could not write file: %w", err)
	}

	return int64(n), nil
}

// EnsureRoot creates the upload root if it is missing.
func EnsureRoot(fsys afero.Fs, root string) error {
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("could not create upload root: %w", err)
	}
	return nil
}
