package record

import (
	"context"
	"sync"
)

type memKey struct {
	processID string
	stage     string
}

// MemStore is an in-memory Store for tests and single-node development.
type MemStore struct {
	mu   sync.RWMutex
	recs map[memKey]ProcessRecord
}

func NewMemStore() *MemStore {
	return &MemStore{recs: make(map[memKey]ProcessRecord)}
}

func (s *MemStore) Get(ctx context.Context, processID, stage string) (ProcessRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[memKey{processID, stage}]
	if !ok {
		return ProcessRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemStore) Put(ctx context.Context, rec ProcessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs[memKey{rec.ProcessID, rec.Stage}] = rec
	return nil
}
