package observability

import (
	"context"
	"sync"

	"github.com/spec-kit/support-desk/internal/events"
)

// Metrics provides basic in-memory counters per event type.
type Metrics struct {
	mu     sync.Mutex
	counts map[events.EventType]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		counts: make(map[events.EventType]int64),
	}
}

// Observe is an events.EventHandler that counts published events.
func (m *Metrics) Observe(ctx context.Context, event events.Event) error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[event.Type]++
	return nil
}

// Register subscribes the counters to every event type the services emit.
func (m *Metrics) Register(dispatcher events.Dispatcher) {
	if m == nil || dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventCustomerRegistered,
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
	} {
		dispatcher.Subscribe(eventType, m.Observe)
	}
}

// Count returns the number of observed events of the given type.
func (m *Metrics) Count(eventType events.EventType) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[eventType]
}

// Snapshot copies all counters.
func (m *Metrics) Snapshot() map[events.EventType]int64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[events.EventType]int64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}
