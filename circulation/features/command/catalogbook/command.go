package catalogbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	commandType = "CatalogBook"
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	BookCode    core.BookCodeString `validate:"required"`
	Title       string
	Author      string
	Year        int
	Genre       string
	TotalCopies int `validate:"gte=1"`
	OccurredOn  core.Day
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookCode string,
	title string,
	author string,
	year int,
	genre string,
	totalCopies int,
	occurredOn core.Day,
) Command {

	return Command{
		BookCode:    strings.TrimSpace(bookCode),
		Title:       title,
		Author:      author,
		Year:        year,
		Genre:       genre,
		TotalCopies: totalCopies,
		OccurredOn:  occurredOn,
	}
}

// BuildCommandFromInput creates a Command from raw text input.
// Year and total copies must be whole numbers, otherwise it returns core.ErrInvalidInput.
func BuildCommandFromInput(
	bookCode string,
	title string,
	author string,
	rawYear string,
	genre string,
	rawTotalCopies string,
	occurredOn core.Day,
) (Command, error) {

	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return Command{}, fmt.Errorf("%w: year %q is not a whole number", core.ErrInvalidInput, rawYear)
	}

	totalCopies, err := strconv.Atoi(strings.TrimSpace(rawTotalCopies))
	if err != nil {
		return Command{}, fmt.Errorf("%w: total copies %q is not a whole number", core.ErrInvalidInput, rawTotalCopies)
	}

	return BuildCommand(bookCode, title, author, year, genre, totalCopies, occurredOn), nil
}
