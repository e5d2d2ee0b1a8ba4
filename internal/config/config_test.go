package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Story)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, 4096, cfg.MaxInputSize)
	assert.Equal(t, 50*time.Millisecond, cfg.AnimationInterval)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DERELICT_LOG_LEVEL", "debug")
	t.Setenv("DERELICT_LOG_FORMAT", "json")
	t.Setenv("DERELICT_STORY", "stories/vault.yaml")
	t.Setenv("DERELICT_ADDR", ":9090")
	t.Setenv("DERELICT_MAX_INPUT_SIZE", "64")
	t.Setenv("DERELICT_ANIMATION_INTERVAL", "10ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "stories/vault.yaml", cfg.Story)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 64, cfg.MaxInputSize)
	assert.Equal(t, 10*time.Millisecond, cfg.AnimationInterval)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"DERELICT_MAX_INPUT_SIZE", "lots", "parse env:"},
		{"DERELICT_MAX_INPUT_SIZE", "0", "max input size"},
		{"DERELICT_ANIMATION_INTERVAL", "-1s", "animation interval"},
		{"DERELICT_LOG_LEVEL", "loud", "invalid log level"},
		{"DERELICT_LOG_FORMAT", "xml", "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
