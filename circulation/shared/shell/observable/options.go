package observable

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

type instrumentation struct {
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// Option configures the instrumentation of a CommandWrapper or QueryWrapper.
type Option func(*instrumentation) error

// WithMetrics sets the metrics collector.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(i *instrumentation) error {
		i.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector.
func WithTracing(collector shell.TracingCollector) Option {
	return func(i *instrumentation) error {
		i.tracingCollector = collector
		return nil
	}
}

// WithContextualLogging sets the contextual logger, it takes precedence over the basic logger.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(i *instrumentation) error {
		i.contextualLogger = logger
		return nil
	}
}

// WithLogging sets the basic logger.
func WithLogging(logger shell.Logger) Option {
	return func(i *instrumentation) error {
		i.logger = logger
		return nil
	}
}

func buildInstrumentation(opts []Option) (instrumentation, error) {
	i := instrumentation{}

	for _, opt := range opts {
		if err := opt(&i); err != nil {
			return instrumentation{}, err
		}
	}

	return i, nil
}
