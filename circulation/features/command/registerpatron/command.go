package registerpatron

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	commandType = "RegisterPatron"
)

// Command represents the intent to register a patron.
// Category is the raw category input, Decide parses it.
type Command struct {
	PatronID   core.PatronIDString `validate:"required"`
	Name       string
	Category   string
	OccurredOn core.Day
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(patronID string, name string, category string, occurredOn core.Day) Command {
	return Command{
		PatronID:   strings.TrimSpace(patronID),
		Name:       name,
		Category:   category,
		OccurredOn: occurredOn,
	}
}
