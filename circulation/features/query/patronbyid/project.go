package patronbyid

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectPatron returns the patron, or core.ErrPatronNotFound.
func ProjectPatron(history core.DomainEvents, query Query) (core.Patron, error) {
	patron, found := core.ProjectCirculationState(history).Patron(query.PatronID)
	if !found {
		return core.Patron{}, fmt.Errorf("%w: %q", core.ErrPatronNotFound, query.PatronID)
	}

	return patron, nil
}

// BuildEventFilter creates the filter for querying the registration of one patron.
func BuildEventFilter(patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PatronRegisteredEventType).
		AndAnyPredicateOf(eventstore.P(core.PatronIDKey, patronID)).
		Finalize()
}
