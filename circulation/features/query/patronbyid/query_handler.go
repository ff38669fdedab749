package patronbyid

import (
	"context"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

// QueryHandler orchestrates the query processing workflow: Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle returns the patron or core.ErrPatronNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Patron, error) {
	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter(query.PatronID))
	if err != nil {
		return core.Patron{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.Patron{}, err
	}

	return ProjectPatron(history, query)
}
