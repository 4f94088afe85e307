package game

import (
	"fmt"
	"time"
)

// Regulation is the configured role distribution for a game of a given size,
// plus the per-round discussion timer. GameState treats it as read-only and
// validates it against the roster when the game starts.
type Regulation struct {
	Roles          map[Role]int
	DiscussionTime time.Duration
}

// TotalPlayers returns the number of seats the regulation accounts for
func (r Regulation) TotalPlayers() int {
	total := 0
	for _, count := range r.Roles {
		total += count
	}
	return total
}

// Validate checks the regulation against a roster size. Role counts must be
// known roles, non-negative, and sum to exactly playerCount.
func (r Regulation) Validate(playerCount int) error {
	if len(r.Roles) == 0 {
		return ErrNoRegulation
	}
	for role, count := range r.Roles {
		if !role.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidRole, role)
		}
		if count < 0 {
			return fmt.Errorf("%w: role %s has negative count %d", ErrInvalidRegulation, role, count)
		}
	}
	if total := r.TotalPlayers(); total != playerCount {
		return fmt.Errorf("%w: regulation seats %d players, roster has %d", ErrInvalidRegulation, total, playerCount)
	}
	return nil
}

// clone returns an independent copy of the regulation
func (r Regulation) clone() Regulation {
	roles := make(map[Role]int, len(r.Roles))
	for role, count := range r.Roles {
		roles[role] = count
	}
	return Regulation{Roles: roles, DiscussionTime: r.DiscussionTime}
}
