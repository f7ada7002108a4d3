// filepath: internal/storage/errors.go
package storage

import (
	"errors"
	"fmt"
)

// Kind identifies why a save was rejected.
type Kind int

const (
	KindFileTooLarge Kind = iota + 1
	KindUnsupportedFileType
	KindUploadRootMissing
	KindPathTraversal
	KindSymlinkEscape
	KindWriteFailed
)

// Sentinel errors, one per Kind. Match them with errors.Is.
var (
	ErrFileTooLarge        = errors.New("file is too large")
	ErrUnsupportedFileType = errors.New("invalid file type")
	ErrUploadRootMissing   = errors.New("upload directory does not exist")
	ErrPathTraversal       = errors.New("path traversal attempt detected")
	ErrSymlinkEscape       = errors.New("saving through symlinks is forbidden")
	ErrWriteFailed         = errors.New("failed to write file")
	errUnknownKind         = errors.New("unknown save error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFileTooLarge:
		return ErrFileTooLarge
	case KindUnsupportedFileType:
		return ErrUnsupportedFileType
	case KindUploadRootMissing:
		return ErrUploadRootMissing
	case KindPathTraversal:
		return ErrPathTraversal
	case KindSymlinkEscape:
		return ErrSymlinkEscape
	case KindWriteFailed:
		return ErrWriteFailed
	default:
		return errUnknownKind
	}
}

// String returns the kind name as used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindFileTooLarge:
		return "file_too_large"
	case KindUnsupportedFileType:
		return "unsupported_file_type"
	case KindUploadRootMissing:
		return "upload_root_missing"
	case KindPathTraversal:
		return "path_traversal"
	case KindSymlinkEscape:
		return "symlink_escape"
	case KindWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// SaveError is the only error type returned by Saver.SecureSave.
// Err carries the underlying cause (e.g. the *fs.PathError of a failed write)
// and may be nil.
type SaveError struct {
	Kind Kind
	Err  error
}

func newSaveError(kind Kind, cause error) *SaveError {
	return &SaveError{Kind: kind, Err: cause}
}

func (e *SaveError) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFileTooLarge) and friends match on Kind.
func (e *SaveError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsSecurityViolation reports whether the rejection indicates an attempt to
// write outside the upload root, as opposed to bad input or an I/O problem.
func (e *SaveError) IsSecurityViolation() bool {
	return e.Kind == KindPathTraversal || e.Kind == KindSymlinkEscape
}

// KindOf extracts the Kind from err, or 0 when err is not a *SaveError.
func KindOf(err error) Kind {
	var saveErr *SaveError
	if errors.As(err, &saveErr) {
		return saveErr.Kind
	}
	return 0
}
