package overdueloans

import (
	"context"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

// QueryHandler orchestrates the query processing workflow: Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
	finePolicy core.FinePolicy
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithFinePolicy replaces core.DefaultFinePolicy for the estimated fines.
func WithFinePolicy(finePolicy core.FinePolicy) Option {
	return func(h *QueryHandler) {
		h.finePolicy = finePolicy
	}
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents, opts ...Option) QueryHandler {
	handler := QueryHandler{
		eventStore: eventStore,
		finePolicy: core.DefaultFinePolicy(),
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle queries the current event history and projects it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (OverdueLoans, error) {
	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return OverdueLoans{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return OverdueLoans{}, err
	}

	return ProjectOverdueLoans(history, query, h.finePolicy)
}
