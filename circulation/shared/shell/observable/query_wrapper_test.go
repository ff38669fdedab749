package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/observable"
)

type stubQuery struct{}

func (stubQuery) QueryType() string {
	return "StubQuery"
}

type stubQueryHandler struct {
	result []core.Book
	err    error
}

func (h stubQueryHandler) Handle(_ context.Context, _ stubQuery) ([]core.Book, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_RecordsSuccess(t *testing.T) {
	// arrange
	books := []core.Book{{Code: "B1", Title: "The Hobbit", TotalCopies: 1, AvailableCopies: 1}}
	metrics, tracing, logger := givenCollectors()
	wrapper, err := observable.NewQueryWrapper[stubQuery, []core.Book](
		stubQueryHandler{result: books},
		observable.WithMetrics(metrics),
		observable.WithTracing(tracing),
		observable.WithContextualLogging(logger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), stubQuery{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, books, result)
	assert.True(t, metrics.HasCounterRecord(shell.QueryHandlerCallsMetric, shell.BuildQueryLabels("StubQuery", shell.StatusSuccess)))
	assert.True(t, metrics.HasDurationRecord(shell.QueryHandlerDurationMetric, map[string]string{"status": shell.StatusSuccess}))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameQueryHandle, shell.StatusSuccess))
	assert.True(t, logger.HasLog("info", shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_RecordsErrors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{name: "not found", err: core.ErrBookNotFound, expectedStatus: shell.StatusError},
		{name: "canceled", err: context.Canceled, expectedStatus: shell.StatusCanceled},
		{name: "timeout", err: context.DeadlineExceeded, expectedStatus: shell.StatusTimeout},
		{name: "wrapped canceled", err: errors.Join(errors.New("query failed"), context.Canceled), expectedStatus: shell.StatusCanceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			metrics, tracing, logger := givenCollectors()
			wrapper, err := observable.NewQueryWrapper[stubQuery, []core.Book](
				stubQueryHandler{err: tc.err},
				observable.WithMetrics(metrics),
				observable.WithTracing(tracing),
				observable.WithContextualLogging(logger),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), stubQuery{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metrics.HasCounterRecord(shell.QueryHandlerCallsMetric, map[string]string{"status": tc.expectedStatus}))
			assert.True(t, tracing.HasFinishedSpan(shell.SpanNameQueryHandle, tc.expectedStatus))
			assert.True(t, logger.HasLog("error", shell.LogMsgQueryFailed))
		})
	}
}
