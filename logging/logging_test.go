package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtutor/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestCompactHandler(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, slog.LevelDebug, logging.FormatCompact)
	require.NoError(t, err)

	log.With("op", "euler").WithGroup("graph").Debug("analyzed",
		"vertices", 5, "kind", "path", "note", "two odd", "error", errors.New("boom"))

	line := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\[DEBUG\] \d\d:\d\d:\d\d analyzed \| `), line)
	assert.Contains(t, line, "op=euler")
	assert.Contains(t, line, "graph.vertices=5")
	assert.Contains(t, line, "graph.kind=path")
	assert.Contains(t, line, `graph.note="two odd"`)
	assert.Contains(t, line, `graph.error="boom"`)
}

func TestCompactHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, slog.LevelWarn, "")
	require.NoError(t, err)
	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "[WARN]  ")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	require.NoError(t, err)
	log.Info("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.EqualValues(t, 3, rec["n"])

	_, err = logging.New(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestDiscard(t *testing.T) {
	assert.False(t, logging.Discard().Enabled(context.Background(), slog.LevelError))
}
