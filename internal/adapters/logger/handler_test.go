package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/quill/internal/adapters/logger"
)

func newHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newHandler(t)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newHandler(t)
	lg := slog.New(handler).With("import", "base")
	lg.Info("resolved", "file", "/p/my file.scss", "line", 3)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Group(t *testing.T) {
	handler, buf := newHandler(t)
	slog.New(handler).WithGroup("cache").Info("probe", "hits", 2)

	g := goldie.New(t)
	g.Assert(t, "handler_group", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}
