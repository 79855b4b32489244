package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newTestZapLogger(t *testing.T) (*ZapLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.DebugLevel,
	)
	return NewZapLogger(zap.New(core).Sugar()), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZapLogger_LevelsAndFields(t *testing.T) {
	log, buf := newTestZapLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", true)
	require.NoError(t, log.Sync())

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)
	require.Equal(t, "debug", lines[0]["level"])
	require.Equal(t, "dbg", lines[0]["msg"])
	require.EqualValues(t, 1, lines[0]["a"])
	require.Equal(t, "info", lines[1]["level"])
	require.Equal(t, "two", lines[1]["b"])
	require.Equal(t, "warn", lines[2]["level"])
	require.Equal(t, "error", lines[3]["level"])
	require.Equal(t, true, lines[3]["d"])
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	log, buf := newTestZapLogger(t)

	log.With("component", "store").Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "store", lines[0]["component"])
	require.Equal(t, "v", lines[0]["k"])
}
