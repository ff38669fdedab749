package core

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when a return is rejected because there is no matching active loan.
type ReturningBookFailed struct {
	BookCode    BookCodeString
	PatronID    PatronIDString
	FailureInfo string
	OccurredOn  Day
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(bookCode string, patronID string, failureInfo string, occurredOn Day) ReturningBookFailed {
	return ReturningBookFailed{
		BookCode:    bookCode,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredOn:  occurredOn,
	}
}

func (e ReturningBookFailed) EventType() string {
	return ReturningBookFailedEventType
}

func (e ReturningBookFailed) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
