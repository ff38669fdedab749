package bookbycode

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

// Handle returns the book or core.ErrBookNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Book, error) {
	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter(query.BookCode))
	if err != nil {
		return core.Book{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.Book{}, err
	}

	return ProjectBook(history, query)
}
