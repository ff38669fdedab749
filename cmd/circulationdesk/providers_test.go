package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/desk"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell/config"
)

func Test_NewContainer_WiresTheMenu(t *testing.T) {
	// arrange
	cfg := config.Default()
	cfg.FinePerDay = 3
	cfg.LogLevel = slog.LevelDebug
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	injector := NewContainer(cfg, Terminal{In: strings.NewReader("7\n"), Out: out, Err: logs})

	// act
	menu, err := do.Invoke[*Menu](injector)

	// assert
	require.NoError(t, err)
	require.NoError(t, menu.Run(context.Background()))
	assert.Contains(t, out.String(), "MAIN MENU")

	d := do.MustInvoke[*desk.Desk](injector)
	assert.Equal(t, 3, d.FinePolicy().PerDay)

	handle := do.MustInvoke[*ObservabilityHandle](injector)
	assert.Nil(t, handle.Metrics)
	assert.Nil(t, handle.Tracing)

	report := injector.Shutdown()
	assert.True(t, report.Succeed)
}

func Test_NewContainer_DeskLogsToTheErrorWriter(t *testing.T) {
	// arrange
	cfg := config.Default()
	cfg.LogLevel = slog.LevelDebug
	logs := &bytes.Buffer{}
	injector := NewContainer(cfg, Terminal{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: logs})
	d := do.MustInvoke[*desk.Desk](injector)

	// act
	_, err := d.RegisterPatron(context.Background(), "P1", "Ana", "student")

	// assert
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "events appended")
}
