package game

import (
	"errors"
	"testing"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(1, "Alice")

	if player.Number() != 1 {
		t.Errorf("Number = %v, want 1", player.Number())
	}
	if player.Name() != "Alice" {
		t.Errorf("Name = %v, want Alice", player.Name())
	}
	if !player.Alive() {
		t.Error("new player should be alive")
	}
	if player.HasRole() {
		t.Errorf("new player should have no role, got %v", player.Role())
	}
	if player.Team() != "" {
		t.Errorf("Team before role assignment = %v, want empty", player.Team())
	}

	history := player.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 initial history record, got %d", len(history))
	}
	if !history[0].Alive {
		t.Error("initial history record should be alive")
	}
}

func TestPlayer_AssignRole(t *testing.T) {
	player := NewPlayer(1, "Bob")

	if err := player.AssignRole(RoleSeer); err != nil {
		t.Fatalf("AssignRole failed: %v", err)
	}
	if player.Role() != RoleSeer {
		t.Errorf("Role = %v, want seer", player.Role())
	}
	if player.Team() != TeamVillage {
		t.Errorf("Team = %v, want village", player.Team())
	}

	// Re-assignment is allowed while still in setup
	if err := player.AssignRole(RoleWerewolf); err != nil {
		t.Fatalf("re-assignment during setup failed: %v", err)
	}
	if player.Team() != TeamWerewolf {
		t.Errorf("Team after re-assignment = %v, want werewolf", player.Team())
	}
}

func TestPlayer_AssignRoleAfterLockFails(t *testing.T) {
	player := NewPlayer(1, "Carol")
	if err := player.AssignRole(RoleVillager); err != nil {
		t.Fatalf("AssignRole failed: %v", err)
	}
	player.lockRole()

	err := player.AssignRole(RoleWerewolf)
	if !errors.Is(err, ErrRoleLocked) {
		t.Errorf("expected ErrRoleLocked, got %v", err)
	}
	if player.Role() != RoleVillager {
		t.Errorf("locked assign must not mutate, role = %v", player.Role())
	}
}

func TestPlayer_AssignInvalidRole(t *testing.T) {
	player := NewPlayer(1, "Dave")

	err := player.AssignRole(Role("vampire"))
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
	if player.HasRole() {
		t.Error("failed assignment must not set a role")
	}
}

func TestPlayer_KillIsIdempotent(t *testing.T) {
	player := NewPlayer(1, "Eve")
	player.AssignRole(RoleVillager)

	player.Kill(2, PhaseNight)
	if player.Alive() {
		t.Fatal("player should be dead after Kill")
	}
	before := len(player.History())

	// Second kill is a no-op: no error, no extra history entry
	player.Kill(3, PhaseDayVote)
	if player.Alive() {
		t.Error("player should stay dead")
	}
	if got := len(player.History()); got != before {
		t.Errorf("idempotent kill appended history: %d -> %d", before, got)
	}

	last := player.History()[before-1]
	if last.Round != 2 || last.Phase != PhaseNight {
		t.Errorf("death record = round %d phase %s, want round 2 night", last.Round, last.Phase)
	}
	if last.Alive {
		t.Error("death record should be dead")
	}
}

func TestPlayer_Resurrect(t *testing.T) {
	player := NewPlayer(1, "Frank")
	player.AssignRole(RoleGuard)

	// Resurrecting a living player is a no-op
	before := len(player.History())
	player.Resurrect(1, PhaseDayDiscussion)
	if got := len(player.History()); got != before {
		t.Errorf("resurrecting a living player appended history: %d -> %d", before, got)
	}

	player.Kill(1, PhaseNight)
	player.Resurrect(2, PhaseDayDiscussion)
	if !player.Alive() {
		t.Error("player should be alive after Resurrect")
	}
}

func TestPlayer_HistoryIsACopy(t *testing.T) {
	player := NewPlayer(1, "Grace")
	player.AssignRole(RoleVillager)

	history := player.History()
	history[0].Reason = "tampered"

	if player.History()[0].Reason == "tampered" {
		t.Error("mutating the returned history must not affect the player")
	}
}
