package memengine

import (
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: query and append details with timing
// Info level: concurrency conflicts.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, it takes precedence over the plain Logger.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EventStore.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.tracingCollector = collector
		return nil
	}
}

// WithEvents seeds the EventStore with already stored events, e.g. for tests.
// Sequence numbers are (re)assigned in the given order.
func WithEvents(events ...eventstore.StorableEvent) Option {
	return func(es *EventStore) error {
		for _, event := range events {
			if event.EventType == "" {
				return eventstore.ErrEmptyEventType
			}

			es.store(event)
		}

		return nil
	}
}
