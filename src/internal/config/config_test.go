package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shourov-bot/bot-panel/src/internal/log"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	require.Error(t, err)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[server
	bind_address = "127.0.0.1:5000"`
	require.NoError(t, os.WriteFile(configFile, []byte(invalidTOML), 0644))

	_, err := LoadConfig(configFile)
	require.Error(t, err)
}

func TestLoadConfig_DecodeErrorIsLoggedVerbatim(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf, &buf)
	t.Cleanup(func() { log.SetOutput(os.Stdout, os.Stderr) })

	configFile := filepath.Join(t.TempDir(), "percent.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[bot]\nname = 100%\n"), 0644))

	_, err := LoadConfig(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.Contains(t, buf.String(), "100%")
	assert.NotContains(t, buf.String(), "%!")
	assert.Contains(t, buf.String(), "Error at line 2")
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "panel.toml")

	content := `[server]
bind_address = "127.0.0.1:8080"

[bot]
restart_policy = "reject"
restart_delay_ms = 50
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.BindAddress)
	assert.Equal(t, RestartPolicyReject, cfg.Bot.RestartPolicy)
	assert.Equal(t, 50*time.Millisecond, cfg.Bot.RestartDelay())
	assert.Equal(t, DefaultAdminUsername, cfg.Auth.AdminUsername)
	assert.Equal(t, DefaultBotName, cfg.Bot.Name)
	assert.Equal(t, configFile, cfg.Path())
	assert.NoError(t, cfg.ValidateConfig())
}

func TestLoadConfig_ZeroRestartDelayIsKept(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "panel.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[bot]\nrestart_delay_ms = 0\n"), 0644))

	cfg, err := LoadConfig(configFile)
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateConfig())
	assert.Equal(t, time.Duration(0), cfg.Bot.RestartDelay())
}

func TestValidateConfig_NegativeRestartDelay(t *testing.T) {
	cfg := DefaultConfig()
	delay := -5
	cfg.Bot.RestartDelayMs = &delay

	err := cfg.ValidateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot.restart_delay_ms")
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBindAddress, cfg.Server.BindAddress)
	assert.Equal(t, RestartPolicyReplace, cfg.Bot.RestartPolicy)
	assert.Equal(t, 3*time.Second, cfg.Bot.RestartDelay())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.False(t, cfg.Auth.RequireToken)
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.BindAddress = "not-a-hostport"
	cfg.Bot.RestartPolicy = "debounce"
	cfg.Auth.TokenTTLMinutes = -1

	err := cfg.ValidateConfig()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)

	paths := make([]string, 0, len(verrs))
	for _, e := range verrs {
		paths = append(paths, e.FieldPath)
	}
	assert.Contains(t, paths, "server.bind_address")
	assert.Contains(t, paths, "bot.restart_policy")
	assert.Contains(t, paths, "auth.token_ttl_minutes")
}

func TestValidateConfig_MissingSection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bot = nil

	err := cfg.ValidateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration must contain 'bot' section")
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "panel.toml")

	cfg := DefaultConfig()
	cfg.Bot.Name = "Test Bot"
	cfg.SetPath(configFile)
	require.NoError(t, cfg.WriteConfig())

	loaded, err := LoadConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, "Test Bot", loaded.Bot.Name)
	assert.Equal(t, cfg.Server.BindAddress, loaded.Server.BindAddress)
}

func TestWriteConfig_NoPath(t *testing.T) {
	assert.Error(t, DefaultConfig().WriteConfig())
}
