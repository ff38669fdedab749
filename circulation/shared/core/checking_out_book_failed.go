package core

// CheckingOutBookFailedEventType is the event type identifier.
const CheckingOutBookFailedEventType = "CheckingOutBookFailed"

// CheckingOutBookFailed represents when a checkout is rejected due to business rule violations.
type CheckingOutBookFailed struct {
	BookCode    BookCodeString
	PatronID    PatronIDString
	FailureInfo string
	OccurredOn  Day
}

// BuildCheckingOutBookFailed creates a new CheckingOutBookFailed event.
func BuildCheckingOutBookFailed(bookCode string, patronID string, failureInfo string, occurredOn Day) CheckingOutBookFailed {
	return CheckingOutBookFailed{
		BookCode:    bookCode,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredOn:  occurredOn,
	}
}

func (e CheckingOutBookFailed) EventType() string {
	return CheckingOutBookFailedEventType
}

func (e CheckingOutBookFailed) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e CheckingOutBookFailed) IsErrorEvent() bool {
	return true
}
