package core

// DecisionResult represents the outcome of a Decide function.
//
// It should only be constructed with SuccessDecision or ErrorDecision.
// Both outcomes carry an event to append, so that rejected requests are recorded in the history, too.
type DecisionResult struct {
	Outcome string // "success" or "error"
	Event   DomainEvent
	Err     error
}

const (
	successOutcome = "success"
	errorOutcome   = "error"
)

// SuccessDecision creates a DecisionResult with the event that changes the state.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Event:   event,
	}
}

// ErrorDecision creates a DecisionResult for a business rule violation, with a failure event to append.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Event:   event,
		Err:     err,
	}
}

// HasError returns the business error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
