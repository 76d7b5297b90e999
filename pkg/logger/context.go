package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const draftIDKey ctxKey = iota

// ContextWithDraftID tags a context with the active draft ID so log
// records emitted during that draft's operations carry it.
func ContextWithDraftID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, draftIDKey, id)
}

// WithDraftID enables the draft_id extractor.
func WithDraftID() Option {
	return WithExtractor(func(ctx context.Context) (slog.Attr, bool) {
		id, ok := ctx.Value(draftIDKey).(string)
		if !ok || id == "" {
			return slog.Attr{}, false
		}
		return slog.String("draft_id", id), true
	})
}
