package registeredpatrons

import (
	"context"

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

// Handle queries the current event history and projects it.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (RegisteredPatrons, error) {
	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return RegisteredPatrons{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return RegisteredPatrons{}, err
	}

	return ProjectRegisteredPatrons(history), nil
}
