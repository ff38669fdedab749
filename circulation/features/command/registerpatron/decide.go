package registerpatron

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// Decide implements the business logic to determine whether a patron can be registered.
//
// Business Rules:
//
//	GIVEN: A patron with PatronID
//	WHEN: RegisterPatron command is received
//	THEN: PatronRegistered event is generated
//	ERROR: "duplicate key" if a patron with this id was registered before
//	ERROR: "invalid category" if the category is neither student nor teacher
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	for _, event := range history {
		if e, ok := event.(core.PatronRegistered); ok && e.PatronID == command.PatronID {
			failure := core.BuildRegisteringPatronFailed(command.PatronID, core.ErrDuplicateKey.Error(), command.OccurredOn)
			return core.ErrorDecision(failure, fmt.Errorf("%s: %w: patron id %q", failure.EventType(), core.ErrDuplicateKey, command.PatronID))
		}
	}

	category, err := core.ParseCategory(command.Category)
	if err != nil {
		failure := core.BuildRegisteringPatronFailed(command.PatronID, core.ErrInvalidCategory.Error(), command.OccurredOn)
		return core.ErrorDecision(failure, fmt.Errorf("%s: %w", failure.EventType(), err))
	}

	return core.SuccessDecision(
		core.BuildPatronRegistered(command.PatronID, command.Name, category, command.OccurredOn),
	)
}

// BuildEventFilter creates the filter for querying all events relevant for registering the patron.
func BuildEventFilter(patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PatronRegisteredEventType).
		AndAnyPredicateOf(eventstore.P(core.PatronIDKey, patronID)).
		Finalize()
}
