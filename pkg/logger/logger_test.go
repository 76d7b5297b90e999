package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingoffice/compose/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept", slog.String("part", "attach"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "kept", rec["msg"])
		require.Equal(t, "attach", rec["part"])
	})

	t.Run("draft id from context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithDraftID())

		ctx := logger.ContextWithDraftID(t.Context(), "draft-42")
		log.InfoContext(ctx, "message sent")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "draft-42", rec["draft_id"])
	})

	t.Run("context without draft id adds nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithDraftID())

		log.InfoContext(t.Context(), "plain")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.NotContains(t, rec, "draft_id")
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		logger.Discard().Info("nowhere")
	})
}
