// Package store provides a small file-backed key-value store for state that
// must survive across views and invocations: the auth token and the
// transient error detail shown on the permission-denied view. Each key maps
// to a file within a base directory, written atomically.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Key names used by the application.
const (
	// KeyAuthToken is the bearer token attached to every API request.
	KeyAuthToken = "auth_token"
)

// FileStore persists string values under a base directory, one file per key.
// It is safe for concurrent use.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates a FileStore rooted at the given directory. The
// directory is created if it doesn't exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Get retrieves the value stored for key. Returns ErrNotFound when the key
// has never been set or has been deleted.
func (fs *FileStore) Get(key string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(fs.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return string(data), nil
}

// Set persists value under key using an atomic write. Tokens land here, so
// files are not group or world readable.
func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return atomicWriteFile(fs.keyToPath(key), []byte(value), 0600)
}

// Delete removes the value stored for key. Deleting an absent key is not an
// error.
func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.keyToPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// keyToPath maps a key to its backing file. Path separators in keys are
// flattened so a key can never escape the base directory.
func (fs *FileStore) keyToPath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(fs.baseDir, safe)
}

// atomicWriteFile writes data to a temporary file and renames it into place,
// so readers never observe a partially written value.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
