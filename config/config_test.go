package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "GEMINI_MODEL", "OPENAI_MODEL", "OPENAI_BASE_URL", "PORT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	clearKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTPServer.Port)
	assert.Equal(t, int64(10<<20), cfg.HTTPServer.MaxBodyBytes)
	assert.Equal(t, 120*time.Second, cfg.HTTPServer.WriteTimeout)
	assert.True(t, cfg.Gantt.Reconcile)
	assert.InDelta(t, 0.7, cfg.Gantt.Temperature, 1e-9)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMin)
	assert.Empty(t, cfg.LLM.Providers)

	delay, total := cfg.LLM.Durations()
	assert.Equal(t, time.Second, delay)
	assert.Equal(t, 90*time.Second, total)
}

func TestLoadFileProviders(t *testing.T) {
	clearKeys(t)
	t.Setenv("MY_GEMINI_KEY", "secret-gemini")

	path := writeConfig(t, `
http_server:
  port: 9090
gantt:
  reconcile: false
llm:
  retry_attempts: 5
  providers:
    - name: openai
      enabled: true
      priority: 2
      api_key: plain-key
      model: gpt-4o-mini
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${MY_GEMINI_KEY}
      model: gemini-2.5-flash
      timeout: 45s
    - name: qwen
      enabled: false
      priority: 1
      model: qwen-plus
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.False(t, cfg.Gantt.Reconcile)
	assert.Equal(t, 5, cfg.LLM.RetryAttempts)
	require.Len(t, cfg.LLM.Providers, 3)

	enabled := cfg.LLM.EnabledProviders()
	require.Len(t, enabled, 2)
	assert.Equal(t, "gemini", enabled[0].Name)
	assert.Equal(t, "secret-gemini", enabled[0].APIKey)
	assert.Equal(t, "45s", enabled[0].Timeout)
	assert.Equal(t, "openai", enabled[1].Name)
	assert.Equal(t, "plain-key", enabled[1].APIKey)
}

func TestLoadSynthesizesProvidersFromEnv(t *testing.T) {
	clearKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	enabled := cfg.LLM.EnabledProviders()
	require.Len(t, enabled, 2)
	assert.Equal(t, "gemini", enabled[0].Name)
	assert.Equal(t, "g-key", enabled[0].APIKey)
	assert.Equal(t, "openai", enabled[1].Name)
	assert.Equal(t, "sk-openai", enabled[1].APIKey)
}

func TestLoadPortFromEnv(t *testing.T) {
	clearKeys(t)
	t.Setenv("PORT", "8123")

	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.HTTPServer.Port)
}

func TestLoadFileErrors(t *testing.T) {
	clearKeys(t)

	tcs := map[string]string{
		"duplicate priority": `
llm:
  providers:
    - {name: gemini, enabled: true, priority: 1, api_key: a}
    - {name: openai, enabled: true, priority: 1, api_key: b}
`,
		"missing name": `
llm:
  providers:
    - {enabled: true, priority: 1, api_key: a}
`,
		"non-positive priority": `
llm:
  providers:
    - {name: gemini, enabled: true, priority: 0, api_key: a}
`,
		"bad retry delay": `
llm:
  retry_delay: soon
`,
	}

	for name, body := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
