// Package observable provides wrappers that instrument command and query handlers
// with metrics, tracing and logging while the handlers themselves stay free of observability.
//
// The wrappers are applied explicitly at wiring time:
//
//	coreHandler := checkoutbook.NewCommandHandler(eventStore, clock)
//
//	observableHandler, err := observable.NewCommandWrapper[checkoutbook.Command](
//		coreHandler,
//		observable.WithMetrics(metricsCollector),
//		observable.WithTracing(tracingCollector),
//		observable.WithContextualLogging(contextualLogger),
//	)
//
// Every option is optional, a wrapper without options only delegates.
package observable
