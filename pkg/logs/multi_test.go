package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	logger := slog.New(m).With(slog.String("service", "test"))
	logger.Info("hello", slog.Int("n", 1))

	for name, buf := range map[string]*bytes.Buffer{"first": &a, "second": &b} {
		out := buf.String()
		if !strings.Contains(out, `"msg":"hello"`) {
			t.Errorf("%s handler missing record: %q", name, out)
		}
		if !strings.Contains(out, `"service":"test"`) {
			t.Errorf("%s handler missing attrs: %q", name, out)
		}
	}
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var info, warn bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	if !m.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled while any handler accepts it")
	}

	logger := slog.New(m)
	logger.Info("only info")

	if !strings.Contains(info.String(), "only info") {
		t.Error("info handler should receive info record")
	}
	if warn.Len() != 0 {
		t.Errorf("warn handler should skip info record, got %q", warn.String())
	}
}
