package event

import (
	"go.uber.org/zap"
)

// maxHistory bounds the number of retained events
const maxHistory = 1000

// Listener receives published events
type Listener func(GameEvent)

// Subscription is the token returned by Subscribe, used to unsubscribe
// a single registration.
type Subscription int

type registration struct {
	id Subscription
	fn Listener
}

// Bus delivers GameEvents to registered listeners. Publish is a synchronous,
// in-order fan-out on the calling goroutine; there is no queueing or retry.
// A Bus is owned by a single game session and is not safe for concurrent use.
type Bus struct {
	log     *zap.SugaredLogger
	nextID  Subscription
	subs    []registration
	history []GameEvent
}

// NewBus creates an empty bus. Each game constructs its own bus so tests and
// parallel games never share listeners.
func NewBus(log *zap.SugaredLogger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a listener and returns its subscription token.
// The same function may be registered more than once; each registration
// fires independently on every publish.
func (b *Bus) Subscribe(fn Listener) Subscription {
	b.nextID++
	b.subs = append(b.subs, registration{id: b.nextID, fn: fn})
	b.log.Debugw("listener subscribed", "subscription", b.nextID)
	return b.nextID
}

// Unsubscribe removes one registration. Unknown tokens are a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	for i, r := range b.subs {
		if r.id == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			b.log.Debugw("listener unsubscribed", "subscription", sub)
			return
		}
	}
}

// Publish invokes every currently-registered listener in subscription order.
// A listener that panics is recovered and logged; the failure never reaches
// the publisher or the remaining listeners.
func (b *Bus) Publish(ev GameEvent) {
	b.history = append(b.history, ev)
	if len(b.history) > maxHistory {
		b.history = b.history[1:]
	}

	b.log.Infow("event published", "type", ev.Type, "source", ev.Source, "id", ev.ID)

	// Snapshot the registrations so a listener that subscribes or
	// unsubscribes during delivery does not affect this fan-out.
	subs := make([]registration, len(b.subs))
	copy(subs, b.subs)

	for _, r := range subs {
		b.deliver(r, ev)
	}
}

func (b *Bus) deliver(r registration, ev GameEvent) {
	defer func() {
		if p := recover(); p != nil {
			b.log.Errorw("listener panicked",
				"subscription", r.id,
				"event_type", ev.Type,
				"panic", p,
			)
		}
	}()
	r.fn(ev)
}

// Recent returns up to n of the most recently published events, oldest first.
// n <= 0 returns the full retained history.
func (b *Bus) Recent(n int) []GameEvent {
	events := b.history
	if n > 0 && n < len(events) {
		events = events[len(events)-n:]
	}
	out := make([]GameEvent, len(events))
	copy(out, events)
	return out
}

// Counts returns the number of retained events per type
func (b *Bus) Counts() map[Type]int {
	counts := make(map[Type]int)
	for _, ev := range b.history {
		counts[ev.Type]++
	}
	return counts
}

// ClearHistory drops the retained event history. Registrations are unaffected.
func (b *Bus) ClearHistory() {
	b.history = nil
}
