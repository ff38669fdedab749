package observable_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/observable"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
	"github.com/AntonStoeckl/circulation-desk-go/testutil/observability/testdoubles"
)

type stubCommand struct{}

func (stubCommand) CommandType() string {
	return "StubCommand"
}

type stubCommandHandler struct {
	result shell.HandlerResult
	err    error
	calls  []stubCommand
}

func (h *stubCommandHandler) Handle(_ context.Context, command stubCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}

func Test_CommandWrapper_Handle_RecordsSuccess(t *testing.T) {
	// arrange
	event := core.BuildBookCataloged("B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 1, 1)
	handler := &stubCommandHandler{result: shell.HandlerResult{AppendedEvent: event, RetryAttempts: 1}}
	metrics, tracing, logger := givenCollectors()
	wrapper := givenCommandWrapper(t, handler, metrics, tracing, logger)

	// act
	result, err := wrapper.Handle(context.Background(), stubCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, event, result.AppendedEvent)
	assert.Len(t, handler.calls, 1)
	assert.True(t, metrics.HasCounterRecord(shell.CommandHandlerCallsMetric, shell.BuildCommandLabels("StubCommand", shell.StatusSuccess)))
	assert.True(t, metrics.HasDurationRecord(shell.CommandHandlerDurationMetric, map[string]string{"status": shell.StatusSuccess}))
	assert.False(t, metrics.HasCounterRecord(shell.CommandHandlerRetriesMetric, nil))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusSuccess))
	assert.True(t, logger.HasLog("info", shell.LogMsgCommandStarted))
	assert.True(t, logger.HasLog("info", shell.LogMsgCommandCompleted))
}

func Test_CommandWrapper_Handle_RecordsRejection(t *testing.T) {
	// arrange
	failure := core.BuildCheckingOutBookFailed("B1", "P1", core.ErrNoCopiesAvailable.Error(), 1)
	handler := &stubCommandHandler{
		result: shell.HandlerResult{AppendedEvent: failure, RetryAttempts: 1},
		err:    core.ErrNoCopiesAvailable,
	}
	metrics, tracing, logger := givenCollectors()
	wrapper := givenCommandWrapper(t, handler, metrics, tracing, logger)

	// act
	_, err := wrapper.Handle(context.Background(), stubCommand{})

	// assert
	assert.ErrorIs(t, err, core.ErrNoCopiesAvailable)
	assert.True(t, metrics.HasCounterRecord(shell.CommandHandlerRejectedMetric, map[string]string{"status": shell.StatusRejected}))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusRejected))
	assert.True(t, logger.HasLog("warn", shell.LogMsgCommandRejected))
}

func Test_CommandWrapper_Handle_ClassifiesTechnicalErrors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		expectedMetric string
	}{
		{
			name:           "canceled",
			err:            context.Canceled,
			expectedStatus: shell.StatusCanceled,
			expectedMetric: shell.CommandHandlerCanceledMetric,
		},
		{
			name:           "timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: shell.StatusTimeout,
			expectedMetric: shell.CommandHandlerTimeoutMetric,
		},
		{
			name:           "concurrency conflict",
			err:            eventstore.ErrConcurrencyConflict,
			expectedStatus: shell.StatusConcurrencyConflict,
			expectedMetric: shell.CommandHandlerConcurrencyConflictMetric,
		},
		{
			name:           "other error",
			err:            errors.New("boom"),
			expectedStatus: shell.StatusError,
			expectedMetric: shell.CommandHandlerCallsMetric,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := &stubCommandHandler{err: tc.err}
			metrics, tracing, logger := givenCollectors()
			wrapper := givenCommandWrapper(t, handler, metrics, tracing, logger)

			// act
			_, err := wrapper.Handle(context.Background(), stubCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metrics.HasCounterRecord(tc.expectedMetric, map[string]string{"status": tc.expectedStatus}))
			assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, tc.expectedStatus))
			assert.True(t, logger.HasLog("error", shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_Handle_RecordsRetryMetrics(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{
		result: shell.HandlerResult{
			RetryAttempts:    3,
			TotalRetryDelay:  30 * time.Millisecond,
			LastErrorType:    shell.ErrorTypeConcurrencyConflict,
			RetriesExhausted: true,
		},
		err: eventstore.ErrConcurrencyConflict,
	}
	metrics := testdoubles.NewMetricsCollectorSpy()
	wrapper, err := observable.NewCommandWrapper[stubCommand](handler, observable.WithMetrics(metrics))
	require.NoError(t, err)

	// act
	_, _ = wrapper.Handle(context.Background(), stubCommand{})

	// assert
	assert.True(t, metrics.HasCounterRecord(
		shell.CommandHandlerRetriesMetric,
		shell.BuildRetryLabels("StubCommand", 2, shell.ErrorTypeConcurrencyConflict),
	))
	assert.True(t, metrics.HasDurationRecord(shell.CommandHandlerRetryDelayMetric, nil))
	assert.True(t, metrics.HasCounterRecord(shell.CommandHandlerMaxRetriesReachedMetric, nil))
}

func Test_CommandWrapper_Handle_WorksWithoutInstrumentation(t *testing.T) {
	handler := &stubCommandHandler{}
	wrapper, err := observable.NewCommandWrapper[stubCommand](handler)
	require.NoError(t, err)

	_, err = wrapper.Handle(context.Background(), stubCommand{})

	assert.NoError(t, err)
	assert.Len(t, handler.calls, 1)
}

func Test_CommandWrapper_Handle_FallsBackToBasicLogger(t *testing.T) {
	handler := &stubCommandHandler{}
	logger := testdoubles.NewContextualLoggerSpy()
	wrapper, err := observable.NewCommandWrapper[stubCommand](handler, observable.WithLogging(logger))
	require.NoError(t, err)

	_, err = wrapper.Handle(context.Background(), stubCommand{})

	require.NoError(t, err)
	assert.True(t, logger.HasLog("info", shell.LogMsgCommandCompleted))
}

func givenCollectors() (
	*testdoubles.MetricsCollectorSpy,
	*testdoubles.TracingCollectorSpy,
	*testdoubles.ContextualLoggerSpy,
) {

	return testdoubles.NewMetricsCollectorSpy(), testdoubles.NewTracingCollectorSpy(), testdoubles.NewContextualLoggerSpy()
}

func givenCommandWrapper(
	t *testing.T,
	handler *stubCommandHandler,
	metrics *testdoubles.MetricsCollectorSpy,
	tracing *testdoubles.TracingCollectorSpy,
	logger *testdoubles.ContextualLoggerSpy,
) *observable.CommandWrapper[stubCommand] {

	t.Helper()

	wrapper, err := observable.NewCommandWrapper[stubCommand](
		handler,
		observable.WithMetrics(metrics),
		observable.WithTracing(tracing),
		observable.WithContextualLogging(logger),
	)
	require.NoError(t, err)

	return wrapper
}
