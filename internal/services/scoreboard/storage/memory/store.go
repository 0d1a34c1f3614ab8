// Package memory provides an in-process snapshot store.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/storage"
)

// Store keeps encoded records in memory. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	records map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

// New returns an empty store.
func New() *Store {
	return &Store{records: map[string][]byte{}}
}

// Seeded returns a store that already holds snapshot.
func Seeded(snapshot storage.Snapshot) (*Store, error) {
	records, err := storage.EncodeRecords(snapshot)
	if err != nil {
		return nil, err
	}
	return &Store{records: records}, nil
}

// Load decodes the held records.
func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return storage.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return storage.Snapshot{}, s.loadErr
	}
	return storage.DecodeRecords(s.records, storage.DefaultSnapshot())
}

// Save encodes and replaces every record.
func (s *Store) Save(ctx context.Context, snapshot storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	records, err := storage.EncodeRecords(snapshot)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.records == nil {
		s.records = map[string][]byte{}
	}
	for key, payload := range records {
		s.records[key] = payload
	}
	s.saves++
	return nil
}

// FailLoad makes subsequent loads return err. Pass nil to clear.
func (s *Store) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSave makes subsequent saves return err. Pass nil to clear.
func (s *Store) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves reports how many saves succeeded.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var _ storage.SnapshotStore = (*Store)(nil)
