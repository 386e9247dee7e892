package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestNew_JSONWithFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, App: "kaupapa", Output: &buf})

	log.Info("dropped", nil)
	log.With(map[string]any{"module": "events"}).Warn("clash", map[string]any{"entity_id": "kp-1"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "WARN", got["level"])
	assert.Equal(t, "clash", got["msg"])
	assert.Equal(t, "kaupapa", got["app"])
	assert.Equal(t, "events", got["module"])
	assert.Equal(t, "kp-1", got["entity_id"])
}

func TestNew_TextSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Output: &buf}).Info("request", map[string]any{"status": 200, "method": "GET"})

	out := buf.String()
	assert.Less(t, strings.Index(out, "method=GET"), strings.Index(out, "status=200"))
}
