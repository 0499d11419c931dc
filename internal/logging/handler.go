package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Handler is a slog.Handler producing compact, optionally colorized text
// output for terminals.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string // dotted group prefix applied to attribute keys

	colorize bool
}

var (
	dimColor   = color.New(color.FgHiBlack)
	debugColor = color.New(color.FgMagenta)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
	keyColor   = color.New(color.FgCyan)
)

// NewHandler creates a new TTY-optimized text handler. Color is enabled only
// when out is a terminal and the environment allows it.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		opts:     *opts,
		out:      out,
		mu:       &sync.Mutex{},
		colorize: colorEnabled(out),
	}
}

// colorEnabled reports whether out can render ANSI color: it must expose a
// terminal file descriptor and the environment must permit it.
func colorEnabled(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return colorAllowedByEnv()
}

// colorAllowedByEnv honors the NO_COLOR convention and TERM=dumb.
func colorAllowedByEnv() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle formats and writes the record. Records are written in a single
// Write call so concurrent loggers do not interleave.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		buf.WriteString(h.paint(dimColor, r.Time.Format(time.Kitchen)))
		buf.WriteByte(' ')
	}

	fmt.Fprintf(&buf, "%-5s %s", h.paintLevel(r.Level), r.Message)

	// Stored attrs carry the prefix they were added under; record attrs get
	// the current one.
	for _, a := range h.attrs {
		h.writeAttr(&buf, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, a, h.prefix)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) writeAttr(buf *bytes.Buffer, a slog.Attr, prefix string) {
	fmt.Fprintf(buf, " %s=%v", h.paint(keyColor, prefix+a.Key), a.Value.Any())
}

func (h *Handler) paint(c *color.Color, s string) string {
	if !h.colorize {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) paintLevel(level slog.Level) string {
	s := level.String()
	if !h.colorize {
		return s
	}
	switch {
	case level >= slog.LevelError:
		return errColor.Sprint(s)
	case level >= slog.LevelWarn:
		return warnColor.Sprint(s)
	case level >= slog.LevelInfo:
		return infoColor.Sprint(s)
	default:
		return debugColor.Sprint(s)
	}
}

// WithAttrs returns a new Handler that includes the given attributes in
// every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a new Handler that prefixes subsequent attribute keys
// with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if strings.TrimSpace(name) == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}
