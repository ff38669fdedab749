package booksincatalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/booksincatalog"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	. "github.com/AntonStoeckl/circulation-desk-go/testutil/helper" //nolint:revive
)

func Test_QueryHandler_Handle_ReturnsBooksInCatalogOrderWithAvailability(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := GivenEventStoreWith(t,
		FixtureBookCataloged("B2", 2, 1),
		FixturePatronRegistered("P1", core.CategoryStudent, 1),
		FixtureBookCataloged("B1", 1, 1),
		FixtureBookCheckedOut("loan-1", "B2", "P1", 8, 1),
		FixtureBookCheckedOut("loan-2", "B1", "P1", 8, 1),
		FixtureBookReturned("loan-2", "B1", "P1", 8, 2),
		core.BuildCheckingOutBookFailed("B1", "P1", "no copies available", 2),
	)
	handler := booksincatalog.NewQueryHandler(es)

	// act
	result, err := handler.Handle(ctx, booksincatalog.BuildQuery())

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "B2", result.Books[0].Code)
	assert.Equal(t, 1, result.Books[0].AvailableCopies)
	assert.True(t, result.Books[0].Available())
	assert.Equal(t, "B1", result.Books[1].Code)
	assert.Equal(t, 1, result.Books[1].AvailableCopies)
	assert.Equal(t, uint(6), result.SequenceNumber)
}

func Test_QueryHandler_Handle_ReturnsEmptyCatalog(t *testing.T) {
	result, err := booksincatalog.NewQueryHandler(GivenEventStoreWith(t)).Handle(context.Background(), booksincatalog.BuildQuery())

	require.NoError(t, err)
	assert.Empty(t, result.Books)
	assert.Zero(t, result.Count)
}

func Test_QueryHandler_Handle_FailsForCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := booksincatalog.NewQueryHandler(GivenEventStoreWith(t)).Handle(ctx, booksincatalog.BuildQuery())

	assert.ErrorIs(t, err, context.Canceled)
}
