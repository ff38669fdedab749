package core

// BookCatalogedEventType is the event type identifier.
const BookCatalogedEventType = "BookCataloged"

// BookCataloged represents when a book with a number of copies is added to the catalog.
type BookCataloged struct {
	BookCode    BookCodeString
	Title       string
	Author      string
	Year        int
	Genre       string
	TotalCopies int
	OccurredOn  Day
}

// BuildBookCataloged creates a new BookCataloged event.
func BuildBookCataloged(
	bookCode string,
	title string,
	author string,
	year int,
	genre string,
	totalCopies int,
	occurredOn Day,
) BookCataloged {

	return BookCataloged{
		BookCode:    bookCode,
		Title:       title,
		Author:      author,
		Year:        year,
		Genre:       genre,
		TotalCopies: totalCopies,
		OccurredOn:  occurredOn,
	}
}

func (e BookCataloged) EventType() string {
	return BookCatalogedEventType
}

func (e BookCataloged) HasOccurredOn() Day {
	return e.OccurredOn
}

func (e BookCataloged) IsErrorEvent() bool {
	return false
}
