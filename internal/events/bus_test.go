package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBusDeliversToMatchingSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(Scope{})
	defer cancel()

	yearID := uuid.New()
	bus.Publish(Event{Type: "created", Entity: "cadet", SchoolYearID: yearID})

	e := receive(t, ch)
	assert.Equal(t, "created", e.Type)
	assert.Equal(t, yearID, e.SchoolYearID)
	assert.False(t, e.At.IsZero())
}

func TestBusScopeFiltersByYear(t *testing.T) {
	bus := NewBus()
	yearID := uuid.New()

	scoped, cancelScoped := bus.Subscribe(Scope{SchoolYearID: yearID})
	defer cancelScoped()
	all, cancelAll := bus.Subscribe(Scope{})
	defer cancelAll()

	bus.Publish(Event{Type: "updated", Entity: "cadet", SchoolYearID: uuid.New()})
	bus.Publish(Event{Type: "updated", Entity: "cadet", SchoolYearID: yearID})

	// The scoped subscriber only sees its own year.
	e := receive(t, scoped)
	assert.Equal(t, yearID, e.SchoolYearID)
	select {
	case extra := <-scoped:
		t.Fatalf("unexpected extra event: %+v", extra)
	default:
	}

	receive(t, all)
	receive(t, all)
}

func TestBusScopeFiltersByChart(t *testing.T) {
	bus := NewBus()
	chartID := uuid.New()

	ch, cancel := bus.Subscribe(Scope{ChartID: chartID})
	defer cancel()

	bus.Publish(Event{Type: "cadet_assigned", Entity: "chain_of_command", ChartID: uuid.New()})
	bus.Publish(Event{Type: "cadet_assigned", Entity: "chain_of_command", ChartID: chartID})

	e := receive(t, ch)
	assert.Equal(t, chartID, e.ChartID)
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(Scope{})

	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	bus.Publish(Event{Type: "deleted", Entity: "school_year"})

	// A second cancel is a no-op.
	cancel()
}

func TestBusDropsWhenSubscriberBackedUp(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(Scope{})
	defer cancel()

	// Overflow the buffered channel; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Type: "created", Entity: "cadet"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	require.NotEmpty(t, ch)
}

func TestScopeMatches(t *testing.T) {
	yearID, chartID := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		scope Scope
		event Event
		want  bool
	}{
		{"empty scope matches everything", Scope{}, Event{SchoolYearID: yearID, ChartID: chartID}, true},
		{"year match", Scope{SchoolYearID: yearID}, Event{SchoolYearID: yearID}, true},
		{"year mismatch", Scope{SchoolYearID: yearID}, Event{SchoolYearID: uuid.New()}, false},
		{"chart match", Scope{ChartID: chartID}, Event{ChartID: chartID}, true},
		{"chart mismatch", Scope{ChartID: chartID}, Event{ChartID: uuid.New()}, false},
		{"both required", Scope{SchoolYearID: yearID, ChartID: chartID}, Event{SchoolYearID: yearID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.Matches(tt.event))
		})
	}
}
