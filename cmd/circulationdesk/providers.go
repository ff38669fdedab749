package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/desk"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/config"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/observable"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/memengine"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/oteladapters"
)

// Terminal is where the menus read from and write to. Err receives the log records.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewContainer creates and configures the DI container with all providers.
func NewContainer(cfg config.Config, terminal Terminal) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, terminal)

	// Core infrastructure
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideContextualLogger)
	do.Provide(injector, ProvideObservability)

	// Session
	do.Provide(injector, ProvideDesk)
	do.Provide(injector, ProvideMenu)

	return injector
}

// ProvideLogger provides the process logger.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Config](i)
	terminal := do.MustInvoke[Terminal](i)

	return config.NewLogger(cfg, terminal.Err), nil
}

// ProvideContextualLogger provides the logger of the event store and the handler wrappers.
func ProvideContextualLogger(i do.Injector) (*oteladapters.SlogBridgeLogger, error) {
	cfg := do.MustInvoke[config.Config](i)
	terminal := do.MustInvoke[Terminal](i)

	return config.NewContextualLogger(cfg, terminal.Err), nil
}

// ObservabilityHandle holds the collectors, both nil when exporting is disabled.
type ObservabilityHandle struct {
	providers *config.ObservabilityProviders
	Metrics   eventstore.MetricsCollector
	Tracing   eventstore.TracingCollector
}

// Shutdown implements do.ShutdownerWithError.
func (h *ObservabilityHandle) Shutdown() error {
	if h.providers == nil {
		return nil
	}

	return h.providers.Shutdown()
}

// ProvideObservability provides the OpenTelemetry collectors if an OTLP endpoint is configured.
func ProvideObservability(i do.Injector) (*ObservabilityHandle, error) {
	cfg := do.MustInvoke[config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	if !cfg.ObservabilityEnabled() {
		log.Debug("Observability disabled, no OTLP endpoint configured")
		return &ObservabilityHandle{}, nil
	}

	providers, err := config.NewObservabilityProviders(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Observability enabled", "endpoint", cfg.OTelEndpoint, "service", cfg.ServiceName)

	return &ObservabilityHandle{
		providers: providers,
		Metrics:   oteladapters.NewMetricsCollector(otel.Meter(cfg.ServiceName)),
		Tracing:   oteladapters.NewTracingCollector(otel.Tracer(cfg.ServiceName)),
	}, nil
}

// ProvideDesk provides the circulation desk session.
func ProvideDesk(i do.Injector) (*desk.Desk, error) {
	cfg := do.MustInvoke[config.Config](i)
	contextualLogger := do.MustInvoke[*oteladapters.SlogBridgeLogger](i)
	observability := do.MustInvoke[*ObservabilityHandle](i)

	storeOptions := []memengine.Option{memengine.WithContextualLogger(contextualLogger)}
	instrumentation := []observable.Option{observable.WithContextualLogging(contextualLogger)}

	if observability.Metrics != nil {
		storeOptions = append(storeOptions, memengine.WithMetrics(observability.Metrics))
		instrumentation = append(instrumentation, observable.WithMetrics(observability.Metrics))
	}

	if observability.Tracing != nil {
		storeOptions = append(storeOptions, memengine.WithTracing(observability.Tracing))
		instrumentation = append(instrumentation, observable.WithTracing(observability.Tracing))
	}

	return desk.New(
		desk.WithFinePolicy(core.FinePolicy{PerDay: cfg.FinePerDay}),
		desk.WithEventStoreOptions(storeOptions...),
		desk.WithInstrumentation(instrumentation...),
	)
}

// ProvideMenu provides the interactive menu.
func ProvideMenu(i do.Injector) (*Menu, error) {
	d := do.MustInvoke[*desk.Desk](i)
	terminal := do.MustInvoke[Terminal](i)

	return NewMenu(d, terminal.In, terminal.Out), nil
}
