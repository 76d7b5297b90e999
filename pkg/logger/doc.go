// Package logger builds the slog.Logger used across the composition
// engine. Output is JSON on stdout; an optional Sentry handler mirrors
// warnings and errors to Sentry when a DSN is configured. Context
// extractors pull request-scoped values (such as the active draft ID)
// into every record.
//
// Usage:
//
//	log := logger.New()
//	log = logger.New(logger.WithLevel(slog.LevelDebug), logger.WithDraftID())
//
//	ctx := logger.ContextWithDraftID(ctx, draft.ID)
//	log.InfoContext(ctx, "attachment staged", slog.String("file", name))
//
// With Sentry:
//
//	log := logger.New(logger.WithSentry(logger.SentryConfig{DSN: dsn}))
package logger
