package mocks

import (
	"context"
	"sync"

	"github.com/you/storefront/domain"
)

// MockEventLogger implements domain.EventLogger interface for testing.
// Events are recorded unless LogEventFunc is set.
type MockEventLogger struct {
	LogEventFunc func(ctx context.Context, event *domain.StoreEvent) error

	mu     sync.Mutex
	events []domain.StoreEvent
}

// NewMockEventLogger creates a new MockEventLogger with default behaviors
func NewMockEventLogger() *MockEventLogger {
	return &MockEventLogger{}
}

// LogEvent records an event
func (m *MockEventLogger) LogEvent(ctx context.Context, event *domain.StoreEvent) error {
	if m.LogEventFunc != nil {
		return m.LogEventFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

// Types returns the recorded event types in order
func (m *MockEventLogger) Types() []domain.StoreEventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.StoreEventType, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.EventType)
	}
	return out
}

// Events returns a copy of the recorded events
func (m *MockEventLogger) Events() []domain.StoreEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.StoreEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Compile-time interface compliance verification
var _ domain.EventLogger = (*MockEventLogger)(nil)
