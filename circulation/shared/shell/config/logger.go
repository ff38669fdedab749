package config

import (
	"io"
	"log/slog"

	"github.com/AntonStoeckl/circulation-desk-go/eventstore/oteladapters"
)

// NewLogger builds the slog logger for writing to w.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(newHandler(cfg, w))
}

// NewContextualLogger builds the logger for the event store and the handler wrappers.
// With observability enabled, records go through the OpenTelemetry slog bridge so that they carry trace ids.
func NewContextualLogger(cfg Config, w io.Writer) *oteladapters.SlogBridgeLogger {
	if cfg.ObservabilityEnabled() {
		return oteladapters.NewSlogBridgeLogger(cfg.ServiceName)
	}

	return oteladapters.NewSlogBridgeLoggerWithHandler(newHandler(cfg, w))
}

func newHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFormat == LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}
