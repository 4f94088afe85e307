package game

import (
	"fmt"
	"time"
)

// StatusRecord is one entry in a player's append-only status history
type StatusRecord struct {
	Round  int
	Phase  Phase
	Alive  bool
	Role   Role
	Reason string
	At     time.Time
}

// Player is one seat in the game: a stable number, a unique display name,
// a hidden role and an alive flag. Players are mutated only by GameState
// and emit no events of their own.
type Player struct {
	number  int
	name    string
	role    Role
	alive   bool
	locked  bool
	history []StatusRecord
}

// NewPlayer creates a living, roleless player
func NewPlayer(number int, name string) *Player {
	p := &Player{
		number: number,
		name:   name,
		alive:  true,
	}
	p.record(0, PhaseSetup, "registered")
	return p
}

// Number returns the stable seat identifier
func (p *Player) Number() int { return p.number }

// Name returns the display name
func (p *Player) Name() string { return p.name }

// Role returns the assigned role, or "" before role distribution
func (p *Player) Role() Role { return p.role }

// HasRole reports whether a role has been assigned
func (p *Player) HasRole() bool { return p.role != "" }

// Team returns the team derived from the assigned role, or "" before
// role distribution.
func (p *Player) Team() Team {
	if p.role == "" {
		return ""
	}
	return p.role.Team()
}

// Alive reports whether the player is still in the game
func (p *Player) Alive() bool { return p.alive }

// AssignRole sets or re-sets the player's role. Re-assignment is allowed
// only until roles are locked at game start; afterwards it fails without
// mutating the player.
func (p *Player) AssignRole(role Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if p.locked {
		return fmt.Errorf("%w: player %s", ErrRoleLocked, p.name)
	}
	p.role = role
	p.record(0, PhaseSetup, "role assigned: "+role.DisplayName())
	return nil
}

// lockRole freezes the role for the rest of the game. Called by GameState
// when the game starts.
func (p *Player) lockRole() { p.locked = true }

// Kill marks the player dead and appends a history entry. Killing a player
// who is already dead is a no-op.
func (p *Player) Kill(round int, phase Phase) {
	if !p.alive {
		return
	}
	p.alive = false
	p.record(round, phase, "died")
}

// Resurrect marks the player alive again. This exists for test scaffolding
// and GM corrections; normal play never revives a player.
func (p *Player) Resurrect(round int, phase Phase) {
	if p.alive {
		return
	}
	p.alive = true
	p.record(round, phase, "resurrected")
}

// History returns a copy of the status history, oldest first
func (p *Player) History() []StatusRecord {
	out := make([]StatusRecord, len(p.history))
	copy(out, p.history)
	return out
}

// reset clears the role and revives the player for a fresh game, keeping
// the seat and name.
func (p *Player) reset() {
	p.role = ""
	p.alive = true
	p.locked = false
	p.record(0, PhaseSetup, "reset")
}

// restorePlayer rebuilds a player from a snapshot. The history restarts at
// the restore point; roles are locked when the restored game is active.
func restorePlayer(ps PlayerSnapshot, round int, phase Phase, locked bool) *Player {
	p := &Player{
		number: ps.Number,
		name:   ps.Name,
		role:   ps.Role,
		alive:  ps.Alive,
		locked: locked,
	}
	p.record(round, phase, "restored")
	return p
}

func (p *Player) record(round int, phase Phase, reason string) {
	p.history = append(p.history, StatusRecord{
		Round:  round,
		Phase:  phase,
		Alive:  p.alive,
		Role:   p.role,
		Reason: reason,
		At:     time.Now(),
	})
}

func (p *Player) String() string {
	role := "unassigned"
	if p.HasRole() {
		role = p.role.DisplayName()
	}
	status := "alive"
	if !p.alive {
		status = "dead"
	}
	return fmt.Sprintf("#%d %s (%s, %s)", p.number, p.name, role, status)
}
