// filepath: internal/storage/paths.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// CanonicalRoot resolves root to an absolute path with every symlink and ".."
// segment removed. The root must exist.
func CanonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", newSaveError(KindUploadRootMissing, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newSaveError(KindUploadRootMissing, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", newSaveError(KindUploadRootMissing, err)
	}
	if !info.IsDir() {
		return "", newSaveError(KindUploadRootMissing, fmt.Errorf("%s is not a directory", resolved))
	}
	return resolved, nil
}

// canonicalize is the non-strict counterpart of CanonicalRoot: the path does
// not have to exist. The longest existing prefix is resolved through
// EvalSymlinks and the missing tail is appended unchanged.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	dir, rest := abs, ""
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(resolved, rest), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}

// VerifyContained checks that candidate lies strictly below root. Both paths
// must already be canonical; comparing unresolved paths is meaningless.
func VerifyContained(root, candidate string) error {
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(candidate, prefix) {
		return newSaveError(KindPathTraversal, fmt.Errorf("resolved path is outside the upload root"))
	}
	return nil
}

// VerifyNoSymlinkAncestors walks every directory strictly between root and
// the file named by target and fails if one of them is a symlink. target is
// the lexical (unresolved) path, so a link that was swapped in after
// canonicalization is still seen. Directories that do not exist are skipped;
// the write will fail on them anyway.
func VerifyNoSymlinkAncestors(fsys afero.Fs, root, target string) error {
	rel, err := filepath.Rel(root, filepath.Dir(target))
	if err != nil {
		return newSaveError(KindPathTraversal, err)
	}
	if rel == "." {
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return newSaveError(KindPathTraversal, fmt.Errorf("target directory is outside the upload root"))
	}

	current := root
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, part)
		info, err := lstat(fsys, current)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return newSaveError(KindSymlinkEscape, err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return newSaveError(KindSymlinkEscape, fmt.Errorf("ancestor %q is a symlink", part))
		}
	}
	return nil
}

// lstat prefers the filesystem's own Lstat and falls back to the OS.
func lstat(fsys afero.Fs, path string) (fs.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return os.Lstat(path)
}
