package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scope selects which entity changes a subscriber receives.
type Scope struct {
	// SchoolYearID limits events to one school year; uuid.Nil matches all.
	SchoolYearID uuid.UUID
	// ChartID limits events to one chain of command; uuid.Nil matches all.
	ChartID uuid.UUID
}

// Matches reports whether an event falls inside the scope.
func (s Scope) Matches(e Event) bool {
	if s.SchoolYearID != uuid.Nil && e.SchoolYearID != s.SchoolYearID {
		return false
	}
	if s.ChartID != uuid.Nil && e.ChartID != s.ChartID {
		return false
	}
	return true
}

// Event describes one entity mutation.
type Event struct {
	Type         string      `json:"type"`
	Entity       string      `json:"entity"`
	SchoolYearID uuid.UUID   `json:"school_year_id,omitempty"`
	ChartID      uuid.UUID   `json:"chart_id,omitempty"`
	Payload      interface{} `json:"payload,omitempty"`
	At           time.Time   `json:"at"`
}

// Bus is an in-process publish/subscribe fan-out for entity change events.
// Delivery is best effort: a subscriber that cannot keep up loses events
// rather than blocking publishers.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]*subscription
}

type subscription struct {
	scope Scope
	ch    chan Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscription)}
}

// Subscribe registers a listener for events matching scope. The returned
// cancel function releases the subscription and closes the channel.
func (b *Bus) Subscribe(scope Scope) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	sub := &subscription{scope: scope, ch: make(chan Event, 32)}
	b.subs[id] = sub

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if s, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(s.ch)
		}
	}
	return sub.ch, cancel
}

// Publish delivers an event to every matching subscriber.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !sub.scope.Matches(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			// subscriber is backed up, drop
		}
	}
}
