package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envFinePerDay   = "CIRCULATION_FINE_PER_DAY"
	envLogLevel     = "CIRCULATION_LOG_LEVEL"
	envLogFormat    = "CIRCULATION_LOG_FORMAT"
	envOTelEndpoint = "CIRCULATION_OTEL_ENDPOINT"
	envServiceName  = "CIRCULATION_SERVICE_NAME"

	// LogFormatText renders human-readable log lines.
	LogFormatText = "text"

	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"

	defaultEnvFile     = ".env"
	defaultServiceName = "circulation-desk"
)

// ErrInvalidConfig is returned when a configuration value cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings of one circulation desk process.
type Config struct {
	FinePerDay   int
	LogLevel     slog.Level
	LogFormat    string
	OTelEndpoint string // empty disables exporting traces and metrics
	ServiceName  string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		FinePerDay:  1,
		LogLevel:    slog.LevelInfo,
		LogFormat:   LogFormatText,
		ServiceName: defaultServiceName,
	}
}

// ObservabilityEnabled reports whether traces and metrics should be exported.
func (c Config) ObservabilityEnabled() bool {
	return c.OTelEndpoint != ""
}

// Load builds the Config from the command-line args, the process environment and an optional .env file.
// Precedence: flags > environment > .env file > defaults.
func Load(args []string) (Config, error) {
	return LoadFrom(args, os.LookupEnv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	flags := flag.NewFlagSet("circulationdesk", flag.ContinueOnError)
	envFile := flags.String("env-file", defaultEnvFile, "path of an optional .env file")
	finePerDay := flags.Int("fine-per-day", 0, "fine per late day")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")
	logFormat := flags.String("log-format", "", "text or json")
	otelEndpoint := flags.String("otel-endpoint", "", "OTLP gRPC endpoint, empty disables exporting")
	serviceName := flags.String("service-name", "", "service name reported to OpenTelemetry")

	if err := flags.Parse(args); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	dotEnv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	lookup := func(key string) (string, bool) {
		if val, ok := lookupEnv(key); ok {
			return val, true
		}

		val, ok := dotEnv[key]

		return val, ok
	}

	raw := map[string]string{}
	for _, key := range []string{envFinePerDay, envLogLevel, envLogFormat, envOTelEndpoint, envServiceName} {
		if val, ok := lookup(key); ok {
			raw[key] = val
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fine-per-day":
			raw[envFinePerDay] = strconv.Itoa(*finePerDay)
		case "log-level":
			raw[envLogLevel] = *logLevel
		case "log-format":
			raw[envLogFormat] = *logFormat
		case "otel-endpoint":
			raw[envOTelEndpoint] = *otelEndpoint
		case "service-name":
			raw[envServiceName] = *serviceName
		}
	})

	return fromRaw(raw)
}

func fromRaw(raw map[string]string) (Config, error) {
	cfg := Default()

	if val, ok := raw[envFinePerDay]; ok {
		finePerDay, err := strconv.Atoi(val)
		if err != nil || finePerDay < 0 {
			return Config{}, fmt.Errorf("%w: fine per day must be a non-negative integer, got %q", ErrInvalidConfig, val)
		}

		cfg.FinePerDay = finePerDay
	}

	if val, ok := raw[envLogLevel]; ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(val)); err != nil {
			return Config{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, val)
		}
	}

	if val, ok := raw[envLogFormat]; ok {
		if val != LogFormatText && val != LogFormatJSON {
			return Config{}, fmt.Errorf("%w: log format must be %s or %s, got %q", ErrInvalidConfig, LogFormatText, LogFormatJSON, val)
		}

		cfg.LogFormat = val
	}

	if val, ok := raw[envOTelEndpoint]; ok {
		cfg.OTelEndpoint = val
	}

	if val, ok := raw[envServiceName]; ok && val != "" {
		cfg.ServiceName = val
	}

	return cfg, nil
}
