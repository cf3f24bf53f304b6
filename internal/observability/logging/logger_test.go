package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"mig-catalog/internal/handler/http/requestid"
	"mig-catalog/internal/observability/logging"
)

func TestNewLogger_RespectsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := logging.NewLogger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled when LOG_LEVEL=debug")
	}

	t.Setenv("LOG_LEVEL", "error")
	logger = logging.NewLogger()
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn level should be disabled when LOG_LEVEL=error")
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := requestid.WithRequestID(context.Background(), "req-abc")
	logging.WithRequestID(ctx, logger).Info("hello")

	if !strings.Contains(buf.String(), "req-abc") {
		t.Errorf("log output = %s, want request_id req-abc", buf.String())
	}
}

func TestWithRequestID_NoIDInContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WithRequestID(context.Background(), logger).Info("hello")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("log output = %s, want no request_id field", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext should fall back to the default logger")
	}
}
