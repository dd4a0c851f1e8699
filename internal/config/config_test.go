package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "gemini-3-flash-preview", cfg.LLM.Model)

	d, err := cfg.OracleTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aaalens.yaml")
	data := "server:\n  host: 0.0.0.0\n  port: 9000\nllm:\n  api_key: from-file\n  model: gemini-2.5-pro\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("AAALENS_PORT", "9090")
	t.Setenv("AAALENS_MODEL", "gemini-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-test", cfg.LLM.Model)
}

func TestGoogleAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "fallback")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.LLM.APIKey)
}

func TestConfigFileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "aaalens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: from-file\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, errors.Is(cfg.Validate(), ErrNoAPIKey))

	cfg.LLM.APIKey = "k"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadTimeout(t *testing.T) {
	cfg := Default()
	cfg.LLM.APIKey = "k"
	cfg.LLM.Timeout = "soon"
	assert.Error(t, cfg.Validate())
}
