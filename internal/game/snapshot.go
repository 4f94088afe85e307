package game

import "time"

// PlayerSnapshot captures the persisted fields of one player
type PlayerSnapshot struct {
	Number int
	Name   string
	Role   Role
	Alive  bool
}

// Snapshot is an immutable point-in-time capture of a GameState, used for
// save and restore. It shares no memory with the live state: mutating the
// game after taking a snapshot never changes the snapshot.
type Snapshot struct {
	Phase   Phase
	Round   int
	Active  bool
	Players []PlayerSnapshot
	TakenAt time.Time
}
