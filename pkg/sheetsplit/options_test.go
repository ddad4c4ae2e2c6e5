package sheetsplit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerOrDiscard(t *testing.T) {
	discard := loggerOrDiscard(nil)
	if discard == nil {
		t.Fatal("expected a logger for nil")
	}
	if discard.Enabled(context.Background(), slog.LevelError) {
		t.Error("fallback logger should discard every record")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	if got := loggerOrDiscard(logger); got != logger {
		t.Error("expected the given logger back")
	}
}
