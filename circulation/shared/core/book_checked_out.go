package core

// BookCheckedOutEventType is the event type identifier.
const BookCheckedOutEventType = "BookCheckedOut"

// BookCheckedOut represents when a patron checks out a copy of a book.
// The loan starts on the day the event occurred.
type BookCheckedOut struct {
	LoanID     LoanIDString
	BookCode   BookCodeString
	PatronID   PatronIDString
	DueDay     Day
	OccurredOn Day
}

// BuildBookCheckedOut creates a new BookCheckedOut event.
func BuildBookCheckedOut(loanID string, bookCode string, patronID string, dueDay Day, occurredOn Day) BookCheckedOut {
	return BookCheckedOut{
		LoanID:     loanID,
		BookCode:   bookCode,
		PatronID:   patronID,
		DueDay:     dueDay,
		OccurredOn: occurredOn,
	}
}

func (e BookCheckedOut) EventType() string {
	return BookCheckedOutEventType
}

func (e BookCheckedOut) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e BookCheckedOut) IsErrorEvent() bool {
	return false
}
