// Package audit records rejected or failed operations in a small set of
// categories. The sink is injected wherever it is needed so tests can
// assert on emitted events instead of scraping a global logger.
package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Category string

const (
	CategoryAuth    Category = "auth"
	CategoryBooking Category = "booking_api"
	CategoryJobs    Category = "jobs"
)

type Sink interface {
	// Record stores one event: the operation that was rejected or failed
	// and the serialized response or failure payload.
	Record(ctx context.Context, category Category, operation string, payload string)
}

type slogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) Sink {
	return &slogSink{logger: logger}
}

func (s *slogSink) Record(ctx context.Context, category Category, operation string, payload string) {
	s.logger.LogAttrs(ctx, slog.LevelWarn, "audit event",
		slog.String("category", string(category)),
		slog.String("operation", operation),
		slog.String("payload", payload),
	)
}

// Recorder is an in-memory sink for tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

type Event struct {
	Category  Category
	Operation string
	Payload   string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(_ context.Context, category Category, operation string, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Category: category, Operation: operation, Payload: payload})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
