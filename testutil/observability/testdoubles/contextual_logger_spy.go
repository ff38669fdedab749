package testdoubles

import (
	"context"
	"sync"
)

// LogRecord is one captured log call.
type LogRecord struct {
	Level   string
	Message string
	Args    []any
}

// ContextualLoggerSpy captures ContextualLogger and Logger calls.
type ContextualLoggerSpy struct {
	records []LogRecord
	mu      sync.Mutex
}

func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record("debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record("info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record("warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *ContextualLoggerSpy) Debug(msg string, args ...any) { s.record("debug", msg, args) }
func (s *ContextualLoggerSpy) Info(msg string, args ...any)  { s.record("info", msg, args) }
func (s *ContextualLoggerSpy) Warn(msg string, args ...any)  { s.record("warn", msg, args) }
func (s *ContextualLoggerSpy) Error(msg string, args ...any) { s.record("error", msg, args) }

func (s *ContextualLoggerSpy) Records() []LogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]LogRecord(nil), s.records...)
}

// HasLog reports whether a message was logged at the level.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, r := range s.Records() {
		if r.Level == level && r.Message == message {
			return true
		}
	}

	return false
}

func (s *ContextualLoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, LogRecord{Level: level, Message: msg, Args: args})
}
