package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds the Sentry integration settings.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

type options struct {
	level      slog.Level
	output     io.Writer
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures the logger built by New.
type Option func(*options)

// WithLevel sets the minimum level written to the primary output.
func WithLevel(level slog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithOutput redirects the primary JSON output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithExtractor registers a context extractor applied to every record.
func WithExtractor(ex ContextExtractor) Option {
	return func(o *options) {
		if ex != nil {
			o.extractors = append(o.extractors, ex)
		}
	}
}

// WithSentry mirrors warnings and errors to Sentry. An empty DSN is a
// no-op so local development needs no special casing.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) { o.sentry = &cfg }
}

// New creates a JSON logger writing to stdout, optionally fanned out to
// Sentry. Sentry init failures degrade to stdout-only logging.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	var handler slog.Handler = slog.NewJSONHandler(o.output, &slog.HandlerOptions{
		Level: o.level,
	})

	if o.sentry != nil && o.sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         o.sentry.DSN,
			Environment: o.sentry.Environment,
			EnableLogs:  true,
		}); err != nil {
			slog.New(handler).Error("sentry init failed", slog.String("error", err.Error()))
		} else {
			sentryHandler := sentryslog.Option{
				EventLevel: []slog.Level{slog.LevelError},
				LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
			}.NewSentryHandler(context.Background())
			handler = newFanoutHandler(handler, sentryHandler)
		}
	}

	return slog.New(newContextHandler(handler, o.extractors...))
}

// Discard returns a logger that drops everything. It is the default for
// sessions constructed without an explicit logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
