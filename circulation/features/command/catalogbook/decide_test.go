package catalogbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/catalogbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	. "github.com/AntonStoeckl/circulation-desk-go/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenBookCodeIsNew(t *testing.T) {
	// arrange
	history := core.DomainEvents{FixtureBookCataloged("B2", 1, 1)}
	command := catalogbook.BuildCommand("B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 3, 4)

	// act
	result := catalogbook.Decide(history, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.BuildBookCataloged("B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 3, 4), result.Event)
}

func Test_Decide_Error_WhenBookCodeExists(t *testing.T) {
	// arrange
	history := core.DomainEvents{FixtureBookCataloged("B1", 1, 1)}
	command := catalogbook.BuildCommand("B1", "Another Title", "Someone", 2000, "Drama", 1, 2)

	// act
	result := catalogbook.Decide(history, command)

	// assert
	assert.ErrorIs(t, result.HasError(), core.ErrDuplicateKey)
	failure, ok := result.Event.(core.CatalogingBookFailed)
	require.True(t, ok, "expected a CatalogingBookFailed event")
	assert.Equal(t, "B1", failure.BookCode)
	assert.True(t, failure.IsErrorEvent())
}

func Test_BuildCommandFromInput(t *testing.T) {
	testCases := []struct {
		name        string
		rawYear     string
		rawCopies   string
		expectedErr error
	}{
		{name: "whole numbers", rawYear: "1937", rawCopies: " 2 "},
		{name: "year is text", rawYear: "nineteen", rawCopies: "2", expectedErr: core.ErrInvalidInput},
		{name: "copies is a fraction", rawYear: "1937", rawCopies: "1.5", expectedErr: core.ErrInvalidInput},
		{name: "copies is empty", rawYear: "1937", rawCopies: "", expectedErr: core.ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			command, err := catalogbook.BuildCommandFromInput(" B1 ", "The Hobbit", "J.R.R. Tolkien", tc.rawYear, "Fantasy", tc.rawCopies, 1)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "B1", command.BookCode)
			assert.Equal(t, 1937, command.Year)
			assert.Equal(t, 2, command.TotalCopies)
		})
	}
}
