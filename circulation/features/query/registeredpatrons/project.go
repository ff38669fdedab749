package registeredpatrons

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectRegisteredPatrons is a pure function that projects the patron directory from the history.
func ProjectRegisteredPatrons(history core.DomainEvents) RegisteredPatrons {
	patrons := core.ProjectCirculationState(history).Patrons()

	return RegisteredPatrons{
		Patrons: patrons,
		Count:   len(patrons),
	}
}

// BuildEventFilter creates the filter for querying all patron registrations.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PatronRegisteredEventType).
		Finalize()
}
