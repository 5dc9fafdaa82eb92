package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerPrintsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil))

	logger.Error("failed to compile vertex shader", slog.String("module", "shaders"), slog.Int("shader", 3))

	line := out.String()
	assert.Contains(t, line, "ERROR [shaders] failed to compile vertex shader shader=3\n")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerWithAttrsKeepsModule(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil)).With(slog.String("module", "painter"))

	logger.Info("closing")
	assert.Contains(t, out.String(), "INFO [painter] closing\n")
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, true, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, out.String())

	logger.Warn("shown")
	assert.Contains(t, out.String(), "\033[93mWARN \033[0m")
	assert.Contains(t, out.String(), "shown")
}
