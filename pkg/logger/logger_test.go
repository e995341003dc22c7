package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func extractor(ctx context.Context) (slog.Attr, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_id", v), true
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("writes json with extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, flush := newLogger(&buf, Config{Level: "info", Format: "json"}, extractor, nil)
		flush(0)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "cart updated", slog.Int("items", 3))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "cart updated", rec["msg"])
		require.Equal(t, "req-1", rec["request_id"])
		require.InDelta(t, 3, rec["items"], 0)
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := newLogger(&buf, Config{Level: "warn"})
		log.Info("hidden")
		require.Zero(t, buf.Len())

		log.Warn("shown")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := newLogger(&buf, Config{Format: "text"})
		log.Info("hello")
		require.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := newLogger(&buf, Config{}, extractor)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.With("component", "checkout").InfoContext(ctx, "paid")

		require.Contains(t, buf.String(), `"request_id":"req-2"`)
		require.Contains(t, buf.String(), `"component":"checkout"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := fanout{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(h)

	log.Info("info")
	log.Error("error")

	require.Contains(t, a.String(), "info")
	require.Contains(t, a.String(), "error")
	require.NotContains(t, b.String(), `"msg":"info"`)
	require.Contains(t, b.String(), "error")
}
