package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"werewolfgm/internal/game"
)

func TestRegulationFileLoadMissing(t *testing.T) {
	f := NewRegulationFile(filepath.Join(t.TempDir(), "regulations.yaml"))

	regs, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestRegulationFileSaveLoad(t *testing.T) {
	f := NewRegulationFile(filepath.Join(t.TempDir(), "regulations.yaml"))

	reg := game.Regulation{
		Roles: map[game.Role]int{
			game.RoleWerewolf: 2,
			game.RoleSeer:     1,
			game.RoleVillager: 4,
		},
		DiscussionTime: 5 * time.Minute,
	}
	require.NoError(t, f.Save("seven", reg))

	regs, err := f.Load()
	require.NoError(t, err)
	require.Contains(t, regs, "seven")
	assert.Equal(t, reg.Roles, regs["seven"].Roles)
	assert.Equal(t, reg.DiscussionTime, regs["seven"].DiscussionTime)
}

func TestRegulationFileSaveReplaces(t *testing.T) {
	f := NewRegulationFile(filepath.Join(t.TempDir(), "regulations.yaml"))

	require.NoError(t, f.Save("house", game.Regulation{
		Roles: map[game.Role]int{game.RoleWerewolf: 1, game.RoleVillager: 4},
	}))
	require.NoError(t, f.Save("house", game.Regulation{
		Roles: map[game.Role]int{game.RoleWerewolf: 2, game.RoleVillager: 3},
	}))

	regs, err := f.Load()
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, 2, regs["house"].Roles[game.RoleWerewolf])
}

func TestRegulationFileKeepsOtherEntries(t *testing.T) {
	f := NewRegulationFile(filepath.Join(t.TempDir(), "regulations.yaml"))

	require.NoError(t, f.Save("five", game.Regulation{
		Roles: map[game.Role]int{game.RoleWerewolf: 1, game.RoleVillager: 4},
	}))
	require.NoError(t, f.Save("nine", game.Regulation{
		Roles: map[game.Role]int{game.RoleWerewolf: 2, game.RoleSeer: 1, game.RoleVillager: 6},
	}))

	regs, err := f.Load()
	require.NoError(t, err)
	assert.Len(t, regs, 2)
	assert.Contains(t, regs, "five")
	assert.Contains(t, regs, "nine")
}

func TestRegulationFileUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regulations.yaml")
	data := "bad:\n  roles:\n    vampire: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := NewRegulationFile(path).Load()
	assert.Error(t, err)
}
