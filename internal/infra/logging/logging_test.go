package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")
	log.Debug("hidden")
	log.Info("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelWarn, "text").Warn("careful")
	assert.Contains(t, buf.String(), "careful")
}

func TestDiscordgoLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json")

	DiscordgoLogger(log)(discordgo.LogWarning, 0, "heartbeat %d\nmissed", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "heartbeat 3 missed", rec["msg"])
	assert.Equal(t, "discordgo", rec["logger"])
}

func TestSessionLevel(t *testing.T) {
	assert.Equal(t, discordgo.LogDebug, SessionLevel(slog.LevelDebug))
	assert.Equal(t, discordgo.LogInformational, SessionLevel(slog.LevelInfo))
	assert.Equal(t, discordgo.LogWarning, SessionLevel(slog.LevelWarn))
	assert.Equal(t, discordgo.LogError, SessionLevel(slog.LevelError))
}
