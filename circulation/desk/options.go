package desk

import (
	"errors"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/clock"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/observable"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/memengine"
)

// ErrNilClock is returned by WithClock for a nil clock.
var ErrNilClock = errors.New("clock must not be nil")

// ErrNegativeFinePerDay is returned by WithFinePolicy for a negative fine.
var ErrNegativeFinePerDay = errors.New("fine per day must not be negative")

type settings struct {
	clock             *clock.Clock
	finePolicy        core.FinePolicy
	retryOptions      []shell.RetryOption
	eventStoreOptions []memengine.Option
	instrumentation   []observable.Option
}

// Option defines a functional option for configuring a Desk.
type Option func(*settings) error

// WithFinePolicy replaces core.DefaultFinePolicy for returns and overdue reports.
func WithFinePolicy(finePolicy core.FinePolicy) Option {
	return func(s *settings) error {
		if finePolicy.PerDay < 0 {
			return ErrNegativeFinePerDay
		}

		s.finePolicy = finePolicy

		return nil
	}
}

// WithClock lets the Desk run on a clock owned by the caller.
func WithClock(c *clock.Clock) Option {
	return func(s *settings) error {
		if c == nil {
			return ErrNilClock
		}

		s.clock = c

		return nil
	}
}

// WithRetryOptions configures the retries of all command handlers on concurrency conflicts.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(s *settings) error {
		s.retryOptions = append(s.retryOptions, opts...)
		return nil
	}
}

// WithEventStoreOptions configures the in-memory event store, e.g. its logger, metrics or tracing.
func WithEventStoreOptions(opts ...memengine.Option) Option {
	return func(s *settings) error {
		s.eventStoreOptions = append(s.eventStoreOptions, opts...)
		return nil
	}
}

// WithInstrumentation instruments all command and query handlers.
func WithInstrumentation(opts ...observable.Option) Option {
	return func(s *settings) error {
		s.instrumentation = append(s.instrumentation, opts...)
		return nil
	}
}
