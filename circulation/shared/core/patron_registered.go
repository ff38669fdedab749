package core

// PatronRegisteredEventType is the event type identifier.
const PatronRegisteredEventType = "PatronRegistered"

// PatronRegistered represents when a patron is registered at the desk.
type PatronRegistered struct {
	PatronID   PatronIDString
	Name       string
	Category   Category
	OccurredOn Day
}

// BuildPatronRegistered creates a new PatronRegistered event.
func BuildPatronRegistered(patronID string, name string, category Category, occurredOn Day) PatronRegistered {
	return PatronRegistered{
		PatronID:   patronID,
		Name:       name,
		Category:   category,
		OccurredOn: occurredOn,
	}
}

func (e PatronRegistered) EventType() string {
	return PatronRegisteredEventType
}

func (e PatronRegistered) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e PatronRegistered) IsErrorEvent() bool {
	return false
}
