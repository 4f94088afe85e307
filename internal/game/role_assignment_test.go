package game

import (
	"fmt"
	"strings"
	"testing"
)

// startWithRegulation registers count players and starts a game with the
// given role distribution.
func startWithRegulation(t *testing.T, roles map[Role]int) *GameState {
	t.Helper()
	g, _ := newTestGame(t)
	total := 0
	for _, c := range roles {
		total += c
	}
	for i := 0; i < total; i++ {
		if _, err := g.AddPlayer(i+1, fmt.Sprintf("player%02d", i+1)); err != nil {
			t.Fatalf("AddPlayer failed: %v", err)
		}
	}
	if err := g.SetRegulation(Regulation{Roles: roles}); err != nil {
		t.Fatalf("SetRegulation failed: %v", err)
	}
	if err := g.StartGame(); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	return g
}

func TestRoleAssignment_MultisetMatchesRegulation(t *testing.T) {
	tests := []struct {
		name  string
		roles map[Role]int
	}{
		{"minimal", map[Role]int{RoleWerewolf: 1, RoleVillager: 2}},
		{"standard five", map[Role]int{RoleWerewolf: 1, RoleSeer: 1, RoleVillager: 3}},
		{"full spread", map[Role]int{
			RoleWerewolf: 2, RoleMadman: 1, RoleSeer: 1,
			RoleMedium: 1, RoleGuard: 1, RoleVillager: 3,
		}},
		{"villager only", map[Role]int{RoleVillager: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startWithRegulation(t, tt.roles)

			assigned := map[Role]int{}
			for _, p := range g.Players() {
				if !p.HasRole() {
					t.Fatalf("player %s has no role after start", p.Name())
				}
				assigned[p.Role()]++
			}
			for role, want := range tt.roles {
				if assigned[role] != want {
					t.Errorf("role %s: assigned %d, want %d", role, assigned[role], want)
				}
			}
			if len(assigned) > len(tt.roles) {
				t.Errorf("assigned roles outside the regulation: %v", assigned)
			}
		})
	}
}

func TestRoleAssignment_OrderVariesAcrossRuns(t *testing.T) {
	// Every run must deal a valid multiset, but the ordering should
	// differ between runs. With 8 players the chance of 20 identical
	// deals is negligible.
	roles := map[Role]int{RoleWerewolf: 2, RoleSeer: 1, RoleGuard: 1, RoleVillager: 4}

	deals := map[string]bool{}
	for run := 0; run < 20; run++ {
		g := startWithRegulation(t, roles)
		var deal []string
		for _, p := range g.Players() {
			deal = append(deal, string(p.Role()))
		}
		deals[strings.Join(deal, ",")] = true
	}

	if len(deals) < 2 {
		t.Errorf("20 deals produced only %d distinct orderings; shuffle looks broken", len(deals))
	}
}

func TestRoleAssignment_Fairness(t *testing.T) {
	// Distributional check on the smallest interesting deal: with one
	// werewolf and one villager, the first seat must get the werewolf
	// about half the time. 400 trials put the acceptance band at more
	// than 9 standard deviations, so a correct shuffle essentially
	// never fails this.
	const trials = 400
	firstSeatWerewolf := 0

	for i := 0; i < trials; i++ {
		g := startWithRegulation(t, map[Role]int{RoleWerewolf: 1, RoleVillager: 1})
		if g.Players()[0].Role() == RoleWerewolf {
			firstSeatWerewolf++
		}
	}

	ratio := float64(firstSeatWerewolf) / trials
	if ratio < 0.35 || ratio > 0.65 {
		t.Errorf("first seat drew the werewolf in %.0f%% of %d trials; expected roughly 50%%", ratio*100, trials)
	}
}
