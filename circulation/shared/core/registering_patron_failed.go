package core

// RegisteringPatronFailedEventType is the event type identifier.
const RegisteringPatronFailedEventType = "RegisteringPatronFailed"

// RegisteringPatronFailed represents when a patron can't be registered due to business rule violations.
type RegisteringPatronFailed struct {
	PatronID    PatronIDString
	FailureInfo string
	OccurredOn  Day
}

// BuildRegisteringPatronFailed creates a new RegisteringPatronFailed event.
func BuildRegisteringPatronFailed(patronID string, failureInfo string, occurredOn Day) RegisteringPatronFailed {
	return RegisteringPatronFailed{
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredOn:  occurredOn,
	}
}

func (e RegisteringPatronFailed) EventType() string {
	return RegisteringPatronFailedEventType
}

func (e RegisteringPatronFailed) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e RegisteringPatronFailed) IsErrorEvent() bool {
	return true
}
