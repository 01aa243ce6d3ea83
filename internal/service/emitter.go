package service

import (
	"context"
	"sync"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter — frontend notification boundary
// ─────────────────────────────────────────────────────────────

// EventEmitter is how services tell the frontend something changed.
// The app layer backs it with wailsRuntime.EventsEmit; MCP-only mode
// uses a no-op. Services never touch the Wails runtime directly.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// MockEmitter records emissions for test assertions. Safe for
// concurrent use: the backup watcher emits from its own goroutine.
type MockEmitter struct {
	mu     sync.Mutex
	events []EmittedEvent
}

// EmittedEvent is one recorded Emit call.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, EmittedEvent{Event: event, Data: data})
}

// Emitted returns a copy of everything recorded so far.
func (m *MockEmitter) Emitted() []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmittedEvent(nil), m.events...)
}
