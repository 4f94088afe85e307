package store

import (
	"sync"

	"werewolfgm/internal/game"
)

// MemoryStore keeps the snapshot in memory. It is the default backend and
// the stand-in used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *game.Snapshot
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveSnapshot replaces the stored snapshot
func (s *MemoryStore) SaveSnapshot(snap game.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := cloneSnapshot(snap)
	s.snap = &copied
	return nil
}

// LoadSnapshot returns the stored snapshot, or ErrNoSnapshot
func (s *MemoryStore) LoadSnapshot() (game.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return game.Snapshot{}, ErrNoSnapshot
	}
	return cloneSnapshot(*s.snap), nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error { return nil }

// cloneSnapshot copies the snapshot so the store never shares player slices
// with callers.
func cloneSnapshot(snap game.Snapshot) game.Snapshot {
	players := make([]game.PlayerSnapshot, len(snap.Players))
	copy(players, snap.Players)
	snap.Players = players
	return snap
}
