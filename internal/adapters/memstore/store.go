package memstore

import (
	"context"
	"sync"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

// Store is a process-lifetime reading cache. Entries live until the process
// exits; concurrent duplicate puts resolve last-write-wins.
type Store struct {
	mu       sync.RWMutex
	readings map[string]domain.ReadingRecord
}

func New() *Store {
	return &Store{readings: make(map[string]domain.ReadingRecord)}
}

func (s *Store) Get(_ context.Context, key string) (domain.ReadingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.readings[key]
	if !ok {
		return domain.ReadingRecord{}, domain.ErrReadingNotFound
	}
	return rec, nil
}

func (s *Store) Put(_ context.Context, rec domain.ReadingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[rec.ID] = rec
	return nil
}
