package event

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of a GameEvent
type Type string

const (
	TypePlayerAdded        Type = "player_added"
	TypePlayerRemoved      Type = "player_removed"
	TypePlayerRoleAssigned Type = "player_role_assigned"
	TypePlayerDied         Type = "player_died"
	TypeGameStarted        Type = "game_started"
	TypePhaseChanged       Type = "phase_changed"
	TypeRoundChanged       Type = "round_changed"
	TypeGameEnded          Type = "game_ended"
	TypeGameReset          Type = "game_reset"
	TypeRegulationUpdated  Type = "regulation_updated"
	TypeError              Type = "error"
)

// GameEvent is an immutable notification emitted by the game core.
// Once published it is never mutated; listeners must treat Data as read-only.
type GameEvent struct {
	ID     string
	Type   Type
	Data   map[string]any
	Source string
	At     time.Time
}

// New creates a GameEvent with a fresh ID and the current timestamp
func New(t Type, data map[string]any, source string) GameEvent {
	return GameEvent{
		ID:     uuid.NewString(),
		Type:   t,
		Data:   data,
		Source: source,
		At:     time.Now(),
	}
}
