package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(" DEBUG ", "json")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.False(t, cfg.Pretty)

	assert.True(t, FromSettings("info", "console").Pretty)
}

func TestConfigure_WritesJSONWithSession(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	l := WithSession("abc")
	l.Info().Str("intent", "login").Msg("Intent handled")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc", line["sessionID"])
	assert.Equal(t, "login", line["intent"])
	assert.Equal(t, "Intent handled", line["message"])
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: "verbose", Output: &buf})
	Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}
