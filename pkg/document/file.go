package document

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/errors"
)

// FileStore keeps the document in a file on disk.
// Writes go to a temporary file in the same directory which is then renamed
// over the original, so readers never observe a partial document.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a store for the file at path. The file does not need
// to exist until the first read.
func NewFileStore(path string) (*FileStore, error) {
	if err := errors.ValidateDocumentName(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &FileStore{path: abs}, nil
}

// Contents reads the file.
func (s *FileStore) Contents(ctx context.Context) (string, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", observe(ctx, config.BackendFile, false, 0, start, fmt.Errorf("read %s: %w", s.path, err))
	}
	return string(data), observe(ctx, config.BackendFile, false, len(data), start, nil)
}

// SetContents atomically replaces the file, keeping its permissions.
func (s *FileStore) SetContents(ctx context.Context, text string) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	return observe(ctx, config.BackendFile, true, len(text), start, s.write(text))
}

func (s *FileStore) write(text string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Name returns the absolute file path.
func (s *FileStore) Name() string { return s.path }

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
