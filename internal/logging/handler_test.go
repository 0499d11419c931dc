package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func testRecord(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), slog.LevelInfo, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestHandler_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil) // bytes.Buffer is not a TTY, so no color

	err := h.Handle(context.Background(), testRecord("created", slog.String("path", "/tmp/.x")))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Errorf("non-TTY output contains ANSI escapes: %q", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("output missing level: %q", out)
	}
	if !strings.Contains(out, "created") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "path=/tmp/.x") {
		t.Errorf("output missing attribute: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("record not newline-terminated: %q", out)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil).WithAttrs([]slog.Attr{slog.String("kind", "cache")})

	if err := h.Handle(context.Background(), testRecord("hit")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "kind=cache") {
		t.Errorf("output missing bound attribute: %q", buf.String())
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil).WithGroup("store")

	r := testRecord("created", slog.String("kind", "data"))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "store.kind=data") {
		t.Errorf("group prefix not applied: %q", buf.String())
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelWarn
	h := NewHandler(&buf, &slog.HandlerOptions{Level: level})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestColorEnabled_Buffer(t *testing.T) {
	if colorEnabled(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer has no terminal descriptor")
	}
}

func TestColorAllowedByEnv(t *testing.T) {
	t.Run("no color env", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if colorAllowedByEnv() {
			t.Error("NO_COLOR must disable color")
		}
	})

	t.Run("dumb terminal", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		if colorAllowedByEnv() {
			t.Error("TERM=dumb must disable color")
		}
	})

	t.Run("normal terminal", func(t *testing.T) {
		t.Setenv("TERM", "xterm-256color")
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		if !colorAllowedByEnv() {
			t.Error("a plain terminal environment should allow color")
		}
	})
}

func TestMultiHandler_FanOut(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiHandler(
		NewHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)

	logger := slog.New(m)
	logger.Info("created", "kind", "home")

	if !strings.Contains(a.String(), "created") {
		t.Errorf("text handler missed the record: %q", a.String())
	}
	if !strings.Contains(b.String(), `"kind":"home"`) {
		t.Errorf("json handler missed the record: %q", b.String())
	}
}

func TestMultiHandler_LevelIsPerHandler(t *testing.T) {
	var verbose, quiet bytes.Buffer
	m := NewMultiHandler(
		NewHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		NewHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	logger := slog.New(m)
	logger.Debug("detail")

	if !strings.Contains(verbose.String(), "detail") {
		t.Error("debug handler should receive debug records")
	}
	if quiet.Len() != 0 {
		t.Errorf("error-level handler received a debug record: %q", quiet.String())
	}
}
