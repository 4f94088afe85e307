// Package store persists game snapshots and named regulations. The game
// core depends only on the Store contract, not on any storage medium.
package store

import (
	"errors"

	"werewolfgm/internal/game"
)

// ErrNoSnapshot is returned by LoadSnapshot when nothing has been saved
var ErrNoSnapshot = errors.New("no saved snapshot")

// Store is the narrow persistence contract the game core needs
type Store interface {
	// SaveSnapshot replaces the stored snapshot with snap.
	SaveSnapshot(snap game.Snapshot) error
	// LoadSnapshot returns the most recently saved snapshot, or
	// ErrNoSnapshot when none exists.
	LoadSnapshot() (game.Snapshot, error)
	Close() error
}
