package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"werewolfgm/internal/event"
)

const eventSource = "game_state"

// maxStateHistory bounds the automatic snapshot trail kept for auditing
const maxStateHistory = 100

// GameState owns the roster, the phase/round state machine, the regulation
// and the end-of-game detection for a single game. All mutations flow
// through it and every meaningful transition is published on the event bus
// it was constructed with.
//
// A GameState is owned by a single GM session; it performs no locking and
// must not be shared between goroutines.
type GameState struct {
	bus *event.Bus
	log *zap.SugaredLogger

	players    []*Player
	byName     map[string]*Player
	phase      Phase
	round      int
	regulation *Regulation
	active     bool

	stateHistory []Snapshot
}

// New creates a GameState in the setup phase, publishing on bus
func New(bus *event.Bus, log *zap.SugaredLogger) *GameState {
	return &GameState{
		bus:    bus,
		log:    log,
		byName: make(map[string]*Player),
		phase:  PhaseSetup,
		round:  0,
	}
}

// Phase returns the current phase
func (g *GameState) Phase() Phase { return g.phase }

// Round returns the current round, 0 during setup
func (g *GameState) Round() int { return g.round }

// Active reports whether the game is running
func (g *GameState) Active() bool { return g.active }

// Regulation returns the configured regulation, if one has been set
func (g *GameState) Regulation() (Regulation, bool) {
	if g.regulation == nil {
		return Regulation{}, false
	}
	return g.regulation.clone(), true
}

// Players returns the roster in registration order
func (g *GameState) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// PlayerByName looks up a player by display name
func (g *GameState) PlayerByName(name string) (*Player, bool) {
	p, ok := g.byName[name]
	return p, ok
}

// AddPlayer registers a new player. Registration is only possible during
// setup; names and seat numbers must be unique within the game.
func (g *GameState) AddPlayer(number int, name string) (*Player, error) {
	if g.phase != PhaseSetup {
		return nil, ErrGameAlreadyStarted
	}
	if _, exists := g.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	for _, p := range g.players {
		if p.Number() == number {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNumber, number)
		}
	}

	player := NewPlayer(number, name)
	g.players = append(g.players, player)
	g.byName[name] = player

	g.bus.Publish(event.New(event.TypePlayerAdded, map[string]any{
		"player_name": name,
		"number":      number,
	}, eventSource))

	g.saveSnapshot()
	g.log.Infow("player added", "name", name, "number", number)
	return player, nil
}

// RemovePlayer unregisters a player. Only possible during setup.
func (g *GameState) RemovePlayer(name string) error {
	if g.phase != PhaseSetup {
		return ErrGameAlreadyStarted
	}
	if _, exists := g.byName[name]; !exists {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}

	delete(g.byName, name)
	for i, p := range g.players {
		if p.Name() == name {
			g.players = append(g.players[:i], g.players[i+1:]...)
			break
		}
	}

	g.bus.Publish(event.New(event.TypePlayerRemoved, map[string]any{
		"player_name": name,
	}, eventSource))

	g.saveSnapshot()
	g.log.Infow("player removed", "name", name)
	return nil
}

// SetRegulation configures the role distribution for this game. Only
// possible during setup; the regulation is validated against the roster
// when the game starts, not here.
func (g *GameState) SetRegulation(reg Regulation) error {
	if g.phase != PhaseSetup {
		return ErrGameAlreadyStarted
	}

	r := reg.clone()
	g.regulation = &r

	roles := make(map[string]int, len(r.Roles))
	for role, count := range r.Roles {
		roles[string(role)] = count
	}
	g.bus.Publish(event.New(event.TypeRegulationUpdated, map[string]any{
		"roles":           roles,
		"discussion_time": r.DiscussionTime.String(),
	}, eventSource))

	g.saveSnapshot()
	g.log.Infow("regulation set", "players", r.TotalPlayers())
	return nil
}

// StartGame validates the regulation against the roster, deals roles with
// an unbiased shuffle of the role multiset, and moves the game into round 1
// day discussion. Starting an already-active game fails without mutation.
func (g *GameState) StartGame() error {
	if g.active {
		return ErrGameAlreadyStarted
	}
	if g.phase != PhaseSetup {
		return ErrGameEnded
	}
	if g.regulation == nil {
		return ErrNoRegulation
	}
	if err := g.regulation.Validate(len(g.players)); err != nil {
		return err
	}

	// Build the role multiset and shuffle it. rand.Shuffle is a uniform
	// Fisher-Yates permutation, so every deal of the multiset is equally
	// likely. Iterate AllRoles, not the map, for a deterministic multiset
	// build order.
	deck := make([]Role, 0, len(g.players))
	for _, role := range AllRoles {
		for i := 0; i < g.regulation.Roles[role]; i++ {
			deck = append(deck, role)
		}
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for i, p := range g.players {
		if err := p.AssignRole(deck[i]); err != nil {
			return err
		}
		p.lockRole()
		g.bus.Publish(event.New(event.TypePlayerRoleAssigned, map[string]any{
			"player_name": p.Name(),
			"role":        string(deck[i]),
			"number":      p.Number(),
		}, eventSource))
	}

	oldPhase := g.phase
	g.active = true
	g.round = 1
	g.phase = PhaseDayDiscussion

	g.bus.Publish(event.New(event.TypeGameStarted, map[string]any{
		"round":        g.round,
		"phase":        string(g.phase),
		"player_count": len(g.players),
	}, eventSource))
	g.bus.Publish(event.New(event.TypePhaseChanged, map[string]any{
		"old_phase": string(oldPhase),
		"new_phase": string(g.phase),
		"round":     g.round,
	}, eventSource))

	g.saveSnapshot()
	g.log.Infow("game started", "players", len(g.players))
	return nil
}

// ChangePhase moves the game to the next phase. Calling it after the game
// has ended is a logged no-op rather than an error: end-condition detection
// can fire between a kill and the transition the GM already queued up, and
// that stray call must not corrupt the ended game. Any other illegal
// transition, including leaving setup without StartGame, fails with
// ErrInvalidTransition and changes nothing.
func (g *GameState) ChangePhase(next Phase) error {
	if !g.active && g.phase != PhaseSetup {
		g.log.Warnw("phase change ignored: game is not active", "requested", next)
		return nil
	}
	if !g.phase.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.phase, next)
	}

	oldPhase := g.phase
	g.phase = next
	roundAdvanced := oldPhase.crossesRoundBoundary(next)
	if roundAdvanced {
		g.round++
	}

	g.bus.Publish(event.New(event.TypePhaseChanged, map[string]any{
		"old_phase": string(oldPhase),
		"new_phase": string(next),
		"round":     g.round,
	}, eventSource))
	if roundAdvanced {
		g.bus.Publish(event.New(event.TypeRoundChanged, map[string]any{
			"round": g.round,
			"phase": string(g.phase),
		}, eventSource))
	}

	g.saveSnapshot()
	g.log.Infow("phase changed", "from", oldPhase, "to", next, "round", g.round)
	return nil
}

// NextRound drives the state machine through the rest of the current cycle,
// back to day discussion of the following round. It applies the same
// inactive-game guard and transition validation as ChangePhase.
func (g *GameState) NextRound() error {
	if !g.active && g.phase != PhaseSetup {
		g.log.Warnw("round advance ignored: game is not active")
		return nil
	}

	// At most one full cycle of transitions brings us back to day
	// discussion.
	for i := 0; i < 3; i++ {
		next, ok := g.phase.Next()
		if !ok {
			return fmt.Errorf("%w: no successor for %s", ErrInvalidTransition, g.phase)
		}
		if err := g.ChangePhase(next); err != nil {
			return err
		}
		if !g.active || g.phase == PhaseDayDiscussion {
			break
		}
	}
	return nil
}

// KillPlayer marks the named player dead, publishes the death and evaluates
// the end condition. Killing an already-dead player succeeds without any
// effect or event.
func (g *GameState) KillPlayer(name string) error {
	if !g.active {
		return ErrGameNotActive
	}
	p, ok := g.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}
	if !p.Alive() {
		g.log.Debugw("player already dead", "name", name)
		return nil
	}

	p.Kill(g.round, g.phase)

	g.bus.Publish(event.New(event.TypePlayerDied, map[string]any{
		"player_name": name,
		"role":        string(p.Role()),
		"team":        string(p.Team()),
		"phase":       string(g.phase),
		"round":       g.round,
	}, eventSource))

	g.saveSnapshot()
	g.log.Infow("player died", "name", name, "round", g.round, "phase", g.phase)

	g.checkGameEndCondition()
	return nil
}

// TeamCounts returns the number of living players per team. Players without
// an assigned role are not counted.
func (g *GameState) TeamCounts() map[Team]int {
	counts := map[Team]int{TeamVillage: 0, TeamWerewolf: 0}
	for _, p := range g.players {
		if p.Alive() && p.HasRole() {
			counts[p.Team()]++
		}
	}
	return counts
}

// AlivePlayers returns the names of all living players, sorted
func (g *GameState) AlivePlayers() []string {
	names := make([]string, 0, len(g.players))
	for _, p := range g.players {
		if p.Alive() {
			names = append(names, p.Name())
		}
	}
	sort.Strings(names)
	return names
}

// checkGameEndCondition ends the game when either team has no living
// players left. Simultaneous elimination of both teams is reported as an
// explicit draw, not folded into a winner.
func (g *GameState) checkGameEndCondition() {
	counts := g.TeamCounts()
	village := counts[TeamVillage]
	werewolf := counts[TeamWerewolf]
	if village > 0 && werewolf > 0 {
		return
	}

	var winner Team
	draw := village == 0 && werewolf == 0
	if !draw {
		if werewolf == 0 {
			winner = TeamVillage
		} else {
			winner = TeamWerewolf
		}
	}

	g.active = false

	g.bus.Publish(event.New(event.TypeGameEnded, map[string]any{
		"winning_team":   string(winner),
		"draw":           draw,
		"final_round":    g.round,
		"village_count":  village,
		"werewolf_count": werewolf,
	}, eventSource))

	g.saveSnapshot()
	if draw {
		g.log.Infow("game ended in a draw", "final_round", g.round)
	} else {
		g.log.Infow("game ended", "winner", winner, "final_round", g.round)
	}
}

// Reset returns the state to setup for a fresh game: roster kept, roles and
// alive flags cleared, regulation dropped.
func (g *GameState) Reset() {
	g.active = false
	g.phase = PhaseSetup
	g.round = 0
	g.regulation = nil
	g.stateHistory = nil

	for _, p := range g.players {
		p.reset()
	}

	g.bus.Publish(event.New(event.TypeGameReset, nil, eventSource))
	g.log.Infow("game state reset")
}

// Save captures a deep, independent snapshot of the current state
func (g *GameState) Save() Snapshot {
	players := make([]PlayerSnapshot, len(g.players))
	for i, p := range g.players {
		players[i] = PlayerSnapshot{
			Number: p.Number(),
			Name:   p.Name(),
			Role:   p.Role(),
			Alive:  p.Alive(),
		}
	}
	return Snapshot{
		Phase:   g.phase,
		Round:   g.round,
		Active:  g.active,
		Players: players,
		TakenAt: time.Now(),
	}
}

// Restore atomically replaces the mutable state with the snapshot's. The
// roster is rebuilt from the snapshot; a partially-applied restore is never
// observable. Intended for controlled checkpoints such as process restart,
// not for use while a caller is mid-operation.
func (g *GameState) Restore(snap Snapshot) {
	players := make([]*Player, 0, len(snap.Players))
	byName := make(map[string]*Player, len(snap.Players))
	for _, ps := range snap.Players {
		p := restorePlayer(ps, snap.Round, snap.Phase, snap.Active)
		players = append(players, p)
		byName[p.Name()] = p
	}

	g.players = players
	g.byName = byName
	g.phase = snap.Phase
	g.round = snap.Round
	g.active = snap.Active

	g.saveSnapshot()
	g.log.Infow("state restored", "phase", snap.Phase, "round", snap.Round)
}

// StateHistory returns the automatic snapshot trail, oldest first
func (g *GameState) StateHistory() []Snapshot {
	out := make([]Snapshot, len(g.stateHistory))
	copy(out, g.stateHistory)
	return out
}

func (g *GameState) saveSnapshot() {
	g.stateHistory = append(g.stateHistory, g.Save())
	if len(g.stateHistory) > maxStateHistory {
		g.stateHistory = g.stateHistory[1:]
	}
}
