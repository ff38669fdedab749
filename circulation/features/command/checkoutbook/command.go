package checkoutbook

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	commandType = "CheckOutBook"
)

// Command represents the intent of a patron to check out a book.
// LoanID identifies the loan that a successful checkout creates.
type Command struct {
	LoanID     core.LoanIDString   `validate:"required"`
	PatronID   core.PatronIDString `validate:"required"`
	BookCode   core.BookCodeString `validate:"required"`
	OccurredOn core.Day
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID string, patronID string, bookCode string, occurredOn core.Day) Command {
	return Command{
		LoanID:     loanID,
		PatronID:   strings.TrimSpace(patronID),
		BookCode:   strings.TrimSpace(bookCode),
		OccurredOn: occurredOn,
	}
}
