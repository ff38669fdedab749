package returnbook

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent of a patron to return a book.
type Command struct {
	PatronID   core.PatronIDString `validate:"required"`
	BookCode   core.BookCodeString `validate:"required"`
	OccurredOn core.Day
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(patronID string, bookCode string, occurredOn core.Day) Command {
	return Command{
		PatronID:   strings.TrimSpace(patronID),
		BookCode:   strings.TrimSpace(bookCode),
		OccurredOn: occurredOn,
	}
}
