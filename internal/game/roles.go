package game

import "fmt"

// Role represents a player's hidden role
type Role string

const (
	RoleVillager Role = "villager"
	RoleWerewolf Role = "werewolf"
	RoleSeer     Role = "seer"
	RoleMedium   Role = "medium"
	RoleGuard    Role = "guard"
	RoleMadman   Role = "madman"
)

// AllRoles lists every playable role
var AllRoles = []Role{RoleVillager, RoleWerewolf, RoleSeer, RoleMedium, RoleGuard, RoleMadman}

// Team represents the side a role wins with
type Team string

const (
	TeamVillage  Team = "village"
	TeamWerewolf Team = "werewolf"
)

// Team returns the side the role belongs to. The madman is human but
// wins with the werewolves.
func (r Role) Team() Team {
	switch r {
	case RoleWerewolf, RoleMadman:
		return TeamWerewolf
	default:
		return TeamVillage
	}
}

// Valid reports whether the role is one of the playable roles
func (r Role) Valid() bool {
	switch r {
	case RoleVillager, RoleWerewolf, RoleSeer, RoleMedium, RoleGuard, RoleMadman:
		return true
	}
	return false
}

// DisplayName returns the GM-facing name of the role
func (r Role) DisplayName() string {
	switch r {
	case RoleVillager:
		return "Villager"
	case RoleWerewolf:
		return "Werewolf"
	case RoleSeer:
		return "Seer"
	case RoleMedium:
		return "Medium"
	case RoleGuard:
		return "Guard"
	case RoleMadman:
		return "Madman"
	default:
		return string(r)
	}
}

// ParseRole converts a configured role name into a Role
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, name)
	}
	return r, nil
}
