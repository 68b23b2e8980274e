package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/devflow/internal/adapters/logger"
)

func newHandlerLogger(t *testing.T, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	return slog.New(handler), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"info", slog.LevelInfo, "message\n"},
		{"warn", slog.LevelWarn, "! message\n"},
		{"error", slog.LevelError, "✗ message\n"},
		{"debug filtered", slog.LevelDebug, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newHandlerLogger(t, slog.LevelInfo)
			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Run("record attrs", func(t *testing.T) {
		lg, buf := newHandlerLogger(t, slog.LevelInfo)
		lg.Info("run", "stack", "rust", "attempt", 1)
		assert.Equal(t, "run stack=rust attempt=1\n", buf.String())
	})

	t.Run("handler attrs come first", func(t *testing.T) {
		lg, buf := newHandlerLogger(t, slog.LevelInfo)
		lg.With("command", "test:unit").Info("run", "stack", "node")
		assert.Equal(t, "run command=test:unit stack=node\n", buf.String())
	})

	t.Run("groups qualify keys", func(t *testing.T) {
		lg, buf := newHandlerLogger(t, slog.LevelInfo)
		lg.WithGroup("probe").Info("done", slog.Group("result", slog.String("status", "error")))
		assert.Equal(t, "done probe.result.status=error\n", buf.String())
	})

	t.Run("empty group name is ignored", func(t *testing.T) {
		lg, buf := newHandlerLogger(t, slog.LevelInfo)
		lg.WithGroup("").Info("plain", "k", "v")
		assert.Equal(t, "plain k=v\n", buf.String())
	})
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
