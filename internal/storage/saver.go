// filepath: internal/storage/saver.go
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// DefaultMaxFileSize is the upload cap used when Config.MaxFileSize is unset.
const DefaultMaxFileSize int64 = 5 << 20

// Config is fixed at startup and never read from global state.
type Config struct {
	// Root is the directory every file is written into. It must exist when
	// SecureSave runs; see EnsureRoot.
	Root string
	// MaxFileSize in bytes. Zero or negative means DefaultMaxFileSize.
	MaxFileSize int64
	// AllowedTypes maps sniffed MIME types to the stored extension. Types
	// missing from the map are rejected even when recognized.
	AllowedTypes map[string]string
}

// SavedFile describes a committed upload.
type SavedFile struct {
	Path      string `json:"-"`
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
}

// Saver runs the secure save pipeline. It holds no mutable state and is safe
// for concurrent use.
type Saver struct {
	root         string
	maxFileSize  int64
	allowedTypes map[string]string
	fs           afero.Fs

	// newName builds the file name relative to the root. Replaced in tests.
	newName func(ext string) string
}

// NewSaver creates a Saver writing through fsys. A nil fsys means the OS
// filesystem.
func NewSaver(cfg Config, fsys afero.Fs) *Saver {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	allowed := make(map[string]string, len(cfg.AllowedTypes))
	for mime, ext := range cfg.AllowedTypes {
		allowed[mime] = ext
	}
	if len(allowed) == 0 {
		allowed = DefaultAllowedTypes()
	}

	return &Saver{
		root:         cfg.Root,
		maxFileSize:  maxSize,
		allowedTypes: allowed,
		fs:           fsys,
		newName:      randomName,
	}
}

func randomName(ext string) string {
	return uuid.NewString() + ext
}

// Root returns the configured (not canonicalized) upload root.
func (s *Saver) Root() string { return s.root }

// MaxFileSize returns the effective size cap in bytes.
func (s *Saver) MaxFileSize() int64 { return s.maxFileSize }

// SecureSave validates data and writes it below the upload root under a
// fresh random name. Only the bytes are trusted; nothing the client declared
// about the file is an input here. Every error is a *SaveError.
func (s *Saver) SecureSave(data []byte) (*SavedFile, error) {
	// 1. Size guard, before looking at any content
	if int64(len(data)) > s.maxFileSize {
		return nil, newSaveError(KindFileTooLarge, fmt.Errorf("%d bytes exceeds limit of %d", len(data), s.maxFileSize))
	}

	// 2. Content sniffing + allow-list
	mimeType := SniffMimeType(data)
	ext, ok := s.allowedTypes[mimeType]
	if mimeType == "" || !ok {
		return nil, newSaveError(KindUnsupportedFileType, nil)
	}

	// 3. Path resolution
	root, err := CanonicalRoot(s.root)
	if err != nil {
		return nil, err
	}
	name := s.newName(ext)
	lexical := filepath.Join(root, name)

	// 4. Symlink guard on the unresolved path, then containment of the
	// resolved one. A linked directory leading outside the root is a
	// symlink escape, not a traversal.
	if err := VerifyNoSymlinkAncestors(s.fs, root, lexical); err != nil {
		return nil, err
	}
	candidate, err := canonicalize(lexical)
	if err != nil {
		return nil, newSaveError(KindPathTraversal, err)
	}
	if err := VerifyContained(root, candidate); err != nil {
		return nil, err
	}

	// 5. Commit
	size, err := WriteFile(s.fs, candidate, data)
	if err != nil {
		return nil, newSaveError(KindWriteFailed, err)
	}

	return &SavedFile{
		Path:      candidate,
		Filename:  filepath.Base(candidate),
		Extension: ext,
		MimeType:  mimeType,
		Size:      size,
	}, nil
}
