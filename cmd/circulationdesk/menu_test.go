package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/desk"
)

func Test_Menu_Run_CheckoutAndLateReturn(t *testing.T) {
	// arrange
	out, menu := givenMenu(t,
		"1", "1", "B1", "The Hobbit", "Tolkien", "Fantasy", "1937", "1", "4", // catalog a book
		"2", "1", "P1", "Ana", "student", "3", // register a patron
		"3", "P1", "B1", // check out
		"6", "3", "9", "5", // advance to day 10
		"5", "2", "5", // overdue report
		"4", "P1", "B1", // return
		"7",
	)

	// act
	err := menu.Run(context.Background())

	// assert
	require.NoError(t, err)
	assertOutputContains(t, out,
		"Book B1 cataloged with 1 copies.",
		"Patron P1 registered as student.",
		"Due on day 8.",
		"Advanced to day 10.",
		"Book: The Hobbit (code B1) | Patron: Ana | Due on day 8 | 2 day(s) late | Estimated fine: 2",
		"Returned 2 day(s) late. Fine: 2",
		"Closing the circulation desk.",
	)
}

func Test_Menu_Run_RendersBusinessErrors_AndKeepsRunning(t *testing.T) {
	// arrange
	out, menu := givenMenu(t,
		"3", "P9", "B9", // unknown patron
		"2", "1", "P1", "Ana", "pupil", "3", // invalid category
		"1", "1", "B1", "Title", "Author", "Genre", "year", "1", "4", // invalid year
		"6", "3", "-2", "5", // invalid number of days
		"9", // invalid option
		"7",
	)

	// act
	err := menu.Run(context.Background())

	// assert
	require.NoError(t, err)
	assertOutputContains(t, out,
		"Patron not found.",
		"Invalid category, use student or teacher.",
		"Invalid input:",
		"Invalid option, please try again.",
		"Closing the circulation desk.",
	)
}

func Test_Menu_Run_ShowsEmptyReports(t *testing.T) {
	// arrange
	out, menu := givenMenu(t, "5", "1", "2", "3", "5", "1", "2", "4", "2", "2", "3", "7")

	// act
	err := menu.Run(context.Background())

	// assert
	require.NoError(t, err)
	assertOutputContains(t, out,
		"No active loans.",
		"No overdue loans.",
		"No finished loans.",
		"No books cataloged.",
		"No patrons registered.",
	)
}

func Test_Menu_Run_SearchesTheCatalog(t *testing.T) {
	// arrange
	out, menu := givenMenu(t,
		"1",
		"1", "B1", "The Hobbit", "Tolkien", "Fantasy", "1937", "2",
		"1", "B2", "Dune", "Herbert", "Science Fiction", "1965", "1",
		"3", "tolk",
		"3", "nothing",
		"4", "7",
	)

	// act
	err := menu.Run(context.Background())

	// assert
	require.NoError(t, err)
	assertOutputContains(t, out,
		"1 book(s) found:",
		"B1 | The Hobbit - Tolkien (1937)",
		"Genre: Fantasy | 2/2 - available",
		`No book matches "nothing".`,
	)
	assert.NotContains(t, out.String(), "B2 | Dune")
}

func Test_Menu_Run_ReturnsNil_WhenInputEnds(t *testing.T) {
	// arrange
	_, menu := givenMenu(t, "1", "1", "B1")

	// act
	err := menu.Run(context.Background())

	// assert
	assert.NoError(t, err)
}

func Test_Menu_Run_StopsForCanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, menu := givenMenu(t, "7")

	// act
	err := menu.Run(ctx)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func givenMenu(t *testing.T, lines ...string) (*bytes.Buffer, *Menu) {
	t.Helper()

	d, err := desk.New()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	return out, NewMenu(d, in, out)
}

func assertOutputContains(t *testing.T, out *bytes.Buffer, expected ...string) {
	t.Helper()

	for _, e := range expected {
		assert.Contains(t, out.String(), e)
	}
}
