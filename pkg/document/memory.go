package document

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/nodeedit/pkg/config"
)

// MemoryStore keeps the document in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	text   string
	writes int
}

// NewMemoryStore creates a store holding text.
func NewMemoryStore(text string) *MemoryStore {
	return &MemoryStore{text: text}
}

// Contents returns the document text.
func (s *MemoryStore) Contents(ctx context.Context) (string, error) {
	start := time.Now()
	s.mu.RLock()
	text := s.text
	s.mu.RUnlock()
	return text, observe(ctx, config.BackendMemory, false, len(text), start, nil)
}

// SetContents replaces the document text.
func (s *MemoryStore) SetContents(ctx context.Context, text string) error {
	start := time.Now()
	s.mu.Lock()
	s.text = text
	s.writes++
	s.mu.Unlock()
	return observe(ctx, config.BackendMemory, true, len(text), start, nil)
}

// Writes returns how many times SetContents was called.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Name describes the store.
func (s *MemoryStore) Name() string { return "memory" }

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
