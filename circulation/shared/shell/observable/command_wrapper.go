package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

// CommandWrapper instruments any command handler with metrics, tracing and logging.
// It translates the HandlerResult and error of the wrapped handler into observability signals.
type CommandWrapper[C shell.Command] struct {
	coreHandler shell.CommandHandler[C]
	commandType string
	instrumentation
}

// NewCommandWrapper creates an observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CommandHandler[C],
	opts ...Option,
) (*CommandWrapper[C], error) {

	i, err := buildInstrumentation(opts)
	if err != nil {
		return nil, err
	}

	var zeroCommand C

	return &CommandWrapper[C]{
		coreHandler:     coreHandler,
		commandType:     zeroCommand.CommandType(),
		instrumentation: i,
	}, nil
}

// Handle delegates to the core handler and records the outcome.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogInfo(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)

	duration := time.Since(commandStart)
	status := shell.CommandStatusFrom(result, err)

	shell.RecordRetryMetrics(ctx, w.metricsCollector, w.commandType, result)
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)
	w.log(ctx, result, status, duration, err)

	return result, err
}

func (w *CommandWrapper[C]) log(
	ctx context.Context,
	result shell.HandlerResult,
	status string,
	duration time.Duration,
	err error,
) {

	args := []any{
		shell.LogAttrCommandType, w.commandType,
		shell.LogAttrBusinessOutcome, status,
		shell.LogAttrDurationMS, shell.ToMilliseconds(duration),
	}

	if result.AppendedEvent != nil {
		args = append(args, shell.LogAttrEventType, result.AppendedEvent.EventType())
	}

	switch status {
	case shell.StatusSuccess:
		shell.LogInfo(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandCompleted, args...)
	case shell.StatusRejected:
		args = append(args, shell.LogAttrError, err.Error())
		shell.LogWarn(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandRejected, args...)
	default:
		args = append(args, shell.LogAttrError, err.Error())
		shell.LogError(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed, args...)
	}
}
