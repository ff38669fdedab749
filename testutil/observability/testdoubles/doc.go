// Package testdoubles provides spies for the observability interfaces of the event store
// and the command handlers: MetricsCollectorSpy, TracingCollectorSpy and ContextualLoggerSpy.
//
// The spies record calls in memory so tests can assert instrumentation without a telemetry backend.
package testdoubles
