package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the loggers built by New and NewWithSentry.
type Option func(*options)

type options struct {
	writer     io.Writer
	level      slog.Level
	text       bool
	extractors []ContextExtractor
}

// WithLevel sets the minimum level. Defaults to Info.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithWriter sets the log destination. Defaults to stderr: under a CGI-style
// transport stdout carries the response, so logs must never land there.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithTextFormat switches from JSON to logfmt-style text output.
func WithTextFormat() Option {
	return func(o *options) {
		o.text = true
	}
}

// WithExtractors appends context extractors. Extraction happens per log
// call, so request-scoped values like request ids land on every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a structured logger. JSON on stderr at Info level unless
// options say otherwise.
func New(opts ...Option) *slog.Logger {
	o := apply(opts)
	return slog.New(NewLogHandlerDecorator(o.handler(), o.extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func apply(opts []Option) *options {
	o := &options{
		writer: os.Stderr,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.writer, ho)
	}
	return slog.NewJSONHandler(o.writer, ho)
}
