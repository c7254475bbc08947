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
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")
	log.Debug("hidden")
	log.Info("farm registered", "farm_id", 0)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "farm registered", line["msg"])
	assert.Equal(t, "agrotour-registry", line["service"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "debug", "text").Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}
