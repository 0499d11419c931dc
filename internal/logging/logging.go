package logging

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

// Format selects the encoding of log records.
type Format string

const (
	// FormatText produces compact text for terminals.
	FormatText Format = "text"
	// FormatJSON produces one JSON object per record.
	FormatJSON Format = "json"
)

// Options describe the logger the CLI flags ask for.
type Options struct {
	// Verbosity is the -v flag count. Ignored when Quiet is set.
	Verbosity int

	// Quiet raises the threshold so only errors pass.
	Quiet bool

	// Format selects the primary encoding; anything but FormatJSON
	// means text.
	Format Format

	// Output receives the primary stream, normally stderr.
	Output io.Writer

	// JSONFiles receive every record as JSON regardless of Format, in
	// addition to Output. Backs the --log-file flag.
	JSONFiles []io.Writer
}

// New builds the logger described by opts. With extra JSON sinks the
// handlers are fanned out through a MultiHandler; otherwise the primary
// handler is used directly.
func New(opts Options) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: opts.level()}

	var primary slog.Handler
	switch opts.Format {
	case FormatJSON:
		primary = slog.NewJSONHandler(opts.Output, hopts)
	default:
		primary = NewHandler(opts.Output, hopts)
	}

	if len(opts.JSONFiles) == 0 {
		return slog.New(primary)
	}

	handlers := make([]slog.Handler, 0, 1+len(opts.JSONFiles))
	handlers = append(handlers, primary)
	for _, w := range opts.JSONFiles {
		handlers = append(handlers, slog.NewJSONHandler(w, hopts))
	}
	return slog.New(NewMultiHandler(handlers...))
}

func (o Options) level() slog.Level {
	if o.Quiet {
		return slog.LevelError
	}
	return LevelFromVerbosity(o.Verbosity)
}

// LevelFromVerbosity maps a -v flag count to a log level.
// 0 is Info, 1 is Debug, and 2 or more lowers the level further so that
// every record passes the handler.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelInfo
	case v == 1:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}

// ForTest returns a debug-level logger routed through t.Log, so records
// surface only on failure or under -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Options{Verbosity: 1, Output: testWriter{t}})
}

// testWriter adapts testing.T to io.Writer. t.Log supplies the newline.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
