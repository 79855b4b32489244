// Package audit records outcome events of the library scheduler and the
// submission store.
//
// Every event carries a Kind, a human-readable Message and optional key-value
// Attrs. FileRecorder appends one line per event to a plain-text log:
//
//	[2006-01-02 15:04:05] Book requested: 'Clean Code' by alice with priority 3
//
// and mirrors the event to a structured logging.Logger. MemoryRecorder keeps
// events in memory for tests and dry runs.
package audit

import (
	"context"
	"sync"
)

// TimeLayout is the timestamp format of audit lines.
const TimeLayout = "2006-01-02 15:04:05"

// Kind classifies an audit event.
type Kind string

const (
	KindSystemStarted     Kind = "SYSTEM_STARTED"
	KindSystemExited      Kind = "SYSTEM_EXITED"
	KindRequestCreated    Kind = "REQUEST_CREATED"
	KindRequestFailed     Kind = "REQUEST_FAILED"
	KindPriorityDefaulted Kind = "PRIORITY_DEFAULTED"
	KindRequestProcessed  Kind = "REQUEST_PROCESSED"
	KindProcessFailed     Kind = "PROCESS_FAILED"
	KindStateLoadFailed   Kind = "STATE_LOAD_FAILED"
	KindSubmitted         Kind = "SUBMITTED"
	KindDuplicateAttempt  Kind = "DUPLICATE_ATTEMPT"
	KindSubmitRejected    Kind = "SUBMIT_REJECTED"
)

// Event is a single audit record.
type Event struct {
	Kind    Kind
	Message string
	Attrs   []any
}

// Recorder persists audit events.
type Recorder interface {
	Record(ctx context.Context, e Event) error
}

// MemoryRecorder collects events in order.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) Record(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

// Events returns a copy of everything recorded so far.
func (m *MemoryRecorder) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Kinds returns the kinds of the recorded events in order.
func (m *MemoryRecorder) Kinds() []Kind {
	events := m.Events()
	out := make([]Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
