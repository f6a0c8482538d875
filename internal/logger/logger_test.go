package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewWithWriter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "info")

	log.Info("project created", "id", 1)
	log.Debug("dropped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "project created", line["msg"])
	assert.EqualValues(t, 1, line["id"])
}

func TestNewWithWriter_DevelopmentColorsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "development", "debug")

	log.Error("boom")

	// TextHandler quotes the control characters.
	assert.Contains(t, buf.String(), `msg="\x1b[31mboom\x1b[0m"`)
}
