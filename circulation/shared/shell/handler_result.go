package shell

import (
	"time"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// HandlerResult represents the outcome of a command handler execution.
// It carries the appended event and the retry metadata, without coupling the handler to observability.
type HandlerResult struct {
	// AppendedEvent is the event the handler appended, nil if nothing was appended.
	// For rejected commands it is the failure event.
	AppendedEvent core.DomainEvent

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the final error encountered, see the ErrorType constants.
	LastErrorType string

	// RetriesExhausted is true when all attempts failed with concurrency conflicts.
	RetriesExhausted bool
}

// NewResult creates a HandlerResult for a handler execution that appended the given event.
func NewResult(appended core.DomainEvent, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		AppendedEvent:    appended,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// NewErrorResult creates a HandlerResult for a handler execution that appended nothing.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return NewResult(nil, retryMetrics)
}

// Rejected reports whether a business rule rejected the command.
func (r HandlerResult) Rejected() bool {
	return r.AppendedEvent != nil && r.AppendedEvent.IsErrorEvent()
}
