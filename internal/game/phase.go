package game

// Phase represents the current stage of a round
type Phase string

const (
	PhaseSetup         Phase = "setup"
	PhaseDayDiscussion Phase = "day_discussion"
	PhaseDayVote       Phase = "day_vote"
	PhaseNight         Phase = "night"
)

// Next returns the legal successor of the phase within the day/night cycle.
// Setup has no successor here: it is only left through StartGame and never
// re-entered.
func (p Phase) Next() (Phase, bool) {
	switch p {
	case PhaseDayDiscussion:
		return PhaseDayVote, true
	case PhaseDayVote:
		return PhaseNight, true
	case PhaseNight:
		return PhaseDayDiscussion, true
	default:
		return "", false
	}
}

// CanTransition reports whether moving from p to next is a legal step
func (p Phase) CanTransition(next Phase) bool {
	successor, ok := p.Next()
	return ok && successor == next
}

// crossesRoundBoundary reports whether leaving p for next completes a full
// cycle. The round counter advances exactly once per cycle, on the
// night-to-morning transition.
func (p Phase) crossesRoundBoundary(next Phase) bool {
	return p == PhaseNight && next == PhaseDayDiscussion
}

// DisplayName returns the GM-facing name of the phase
func (p Phase) DisplayName() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseDayDiscussion:
		return "Day (discussion)"
	case PhaseDayVote:
		return "Day (vote)"
	case PhaseNight:
		return "Night"
	default:
		return string(p)
	}
}
