package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "attivita.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "gpt-4o-mini", cfg.Agent.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATTIVITA_SERVER_PORT", "9090")
	t.Setenv("ATTIVITA_DB_PATH", "/tmp/test.db")
	t.Setenv("ATTIVITA_LOG_LEVEL", "debug")
	t.Setenv("ATTIVITA_TRANSPORT_MODE", "stdio")
	t.Setenv("ATTIVITA_AGENT_BASE_URL", "https://llm.internal/v1")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "https://llm.internal/v1", cfg.Agent.BaseURL)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("ATTIVITA_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7070
agent:
  model: llama3
`), 0o644))
	t.Setenv("ATTIVITA_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "llama3", cfg.Agent.Model)

	// Environment still wins over the file.
	t.Setenv("ATTIVITA_AGENT_MODEL", "gpt-4o")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "gpt-4o", cfg.Agent.Model)
}
