package config

import (
	"fmt"

	"werewolfgm/internal/game"
)

// Regulation converts the preset into a game regulation. It fails if the
// preset names a role the game core does not know.
func (p Preset) Regulation() (game.Regulation, error) {
	roles := make(map[game.Role]int, len(p.Roles))
	for name, count := range p.Roles {
		role, err := game.ParseRole(name)
		if err != nil {
			return game.Regulation{}, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		roles[role] = count
	}
	return game.Regulation{Roles: roles, DiscussionTime: p.DiscussionTime}, nil
}
