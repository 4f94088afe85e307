// Package gamelog records a human-readable trail of game events for the GM.
// It is a plain bus listener; the game core does not know it exists.
package gamelog

import (
	"fmt"
	"strings"
	"time"

	"werewolfgm/internal/event"
)

// maxEntries bounds the retained log
const maxEntries = 500

// Entry is one line of the game log
type Entry struct {
	At      time.Time
	Type    event.Type
	Message string
}

// Log accumulates formatted entries from a bus subscription
type Log struct {
	bus     *event.Bus
	sub     event.Subscription
	entries []Entry
}

// New creates a log and subscribes it to the bus
func New(bus *event.Bus) *Log {
	l := &Log{bus: bus}
	l.sub = bus.Subscribe(l.handle)
	return l
}

// Close detaches the log from the bus. Recorded entries stay readable.
func (l *Log) Close() {
	l.bus.Unsubscribe(l.sub)
}

// Entries returns a copy of the recorded entries, oldest first
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// String renders the log for the GM console
func (l *Log) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		fmt.Fprintf(&b, "%s  %s\n", e.At.Format("15:04:05"), e.Message)
	}
	return b.String()
}

func (l *Log) handle(ev event.GameEvent) {
	l.entries = append(l.entries, Entry{
		At:      ev.At,
		Type:    ev.Type,
		Message: format(ev),
	})
	if len(l.entries) > maxEntries {
		l.entries = l.entries[1:]
	}
}

// format turns an event into one GM-readable line
func format(ev event.GameEvent) string {
	switch ev.Type {
	case event.TypePlayerAdded:
		return fmt.Sprintf("Player %v joined (seat %v)", ev.Data["player_name"], ev.Data["number"])
	case event.TypePlayerRemoved:
		return fmt.Sprintf("Player %v left", ev.Data["player_name"])
	case event.TypePlayerRoleAssigned:
		return fmt.Sprintf("Player %v was dealt %v", ev.Data["player_name"], ev.Data["role"])
	case event.TypePlayerDied:
		return fmt.Sprintf("Player %v (%v) died in round %v", ev.Data["player_name"], ev.Data["team"], ev.Data["round"])
	case event.TypeGameStarted:
		return fmt.Sprintf("Game started with %v players", ev.Data["player_count"])
	case event.TypePhaseChanged:
		return fmt.Sprintf("Phase: %v -> %v (round %v)", ev.Data["old_phase"], ev.Data["new_phase"], ev.Data["round"])
	case event.TypeRoundChanged:
		return fmt.Sprintf("Round %v begins", ev.Data["round"])
	case event.TypeGameEnded:
		if draw, _ := ev.Data["draw"].(bool); draw {
			return fmt.Sprintf("Game over after round %v: draw", ev.Data["final_round"])
		}
		return fmt.Sprintf("Game over after round %v: %v team wins", ev.Data["final_round"], ev.Data["winning_team"])
	case event.TypeGameReset:
		return "Game state reset"
	case event.TypeRegulationUpdated:
		return "Regulation updated"
	default:
		return string(ev.Type)
	}
}
