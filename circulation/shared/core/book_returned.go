package core

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a patron returns a checked out book.
// LateDays and Fine are assessed with the fine policy in force on the return day.
type BookReturned struct {
	LoanID     LoanIDString
	BookCode   BookCodeString
	PatronID   PatronIDString
	DueDay     Day
	LateDays   int
	Fine       int
	OccurredOn Day
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(
	loanID string,
	bookCode string,
	patronID string,
	dueDay Day,
	lateDays int,
	fine int,
	occurredOn Day,
) BookReturned {

	return BookReturned{
		LoanID:     loanID,
		BookCode:   bookCode,
		PatronID:   patronID,
		DueDay:     dueDay,
		LateDays:   lateDays,
		Fine:       fine,
		OccurredOn: occurredOn,
	}
}

func (e BookReturned) EventType() string {
	return BookReturnedEventType
}

func (e BookReturned) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e BookReturned) IsErrorEvent() bool {
	return false
}
