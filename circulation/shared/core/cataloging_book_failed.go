package core

// CatalogingBookFailedEventType is the event type identifier.
const CatalogingBookFailedEventType = "CatalogingBookFailed"

// CatalogingBookFailed represents when a book can't be cataloged due to business rule violations.
type CatalogingBookFailed struct {
	BookCode    BookCodeString
	FailureInfo string
	OccurredOn  Day
}

// BuildCatalogingBookFailed creates a new CatalogingBookFailed event.
func BuildCatalogingBookFailed(bookCode string, failureInfo string, occurredOn Day) CatalogingBookFailed {
	return CatalogingBookFailed{
		BookCode:    bookCode,
		FailureInfo: failureInfo,
		OccurredOn:  occurredOn,
	}
}

func (e CatalogingBookFailed) EventType() string {
	return CatalogingBookFailedEventType
}

func (e CatalogingBookFailed) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e CatalogingBookFailed) IsErrorEvent() bool {
	return true
}
