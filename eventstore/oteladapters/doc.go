// Package oteladapters provides OpenTelemetry implementations of the eventstore observability interfaces:
//   - MetricsCollector maps durations to histograms, counters to counters and values to gauges
//   - TracingCollector wraps an OpenTelemetry tracer
//   - SlogBridgeLogger is a ContextualLogger on top of log/slog, optionally bridged to OpenTelemetry logs
//
// The same adapters serve the event store engines and the command handler wrapper of the circulation desk.
package oteladapters
