package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore writes uploaded artifacts to a directory on local disk.
// Artifact writes and document record inserts are deliberately not atomic;
// callers remove the artifact when the record insert fails.
type FileStore struct {
	Root string
}

// NewFileStore ensures the root directory exists and returns the store.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", root, err)
	}
	return &FileStore{Root: root}, nil
}

// SanitizeName reduces a client-supplied file name to a safe identifier:
// path separators become underscores, everything outside [A-Za-z0-9_.-]
// is dropped, and an empty result falls back to "default".
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "default"
	}
	return out
}

// StorageName composes the on-disk name for an upload: timestamp, case id,
// uploader id and the sanitized original name.
func (fs *FileStore) StorageName(caseID, uploaderID, originalName string) string {
	return fmt.Sprintf("%d_%s_%s_%s", time.Now().Unix(), caseID, uploaderID, SanitizeName(originalName))
}

// Save streams src into a new artifact under the store root and returns
// its absolute path. A partially written file is removed on error.
func (fs *FileStore) Save(src io.Reader, name string) (string, error) {
	path := filepath.Join(fs.Root, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create artifact %q: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write artifact %q: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to flush artifact %q: %w", path, err)
	}
	return path, nil
}

// Remove deletes an artifact. A missing artifact is not an error.
func (fs *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact %q: %w", path, err)
	}
	return nil
}

// Exists reports whether an artifact is present at path.
func (fs *FileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
