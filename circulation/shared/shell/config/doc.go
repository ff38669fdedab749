// Package config loads the configuration of the circulation desk and builds the logger
// and the optional OpenTelemetry providers from it.
package config
