package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
provider:
  endpoint: "https://trends.example.com/api/interest"
  api_key: "secret"
  timeframe: "today 12-m"
  timeout: 5s
  pause: 250ms
analysis:
  keywords: ["botox", "peeling"]
  top_n: 3
export:
  csv_path: "out/analise.csv"
server:
  port: 9090
logger:
  level: debug
  format: json
`)

	m := NewManager()
	cfg, err := m.Load(path)
	require.NoError(t, err)
	require.Same(t, cfg, m.GetConfig())

	require.Equal(t, "https://trends.example.com/api/interest", cfg.Provider.Endpoint)
	require.Equal(t, "secret", cfg.Provider.APIKey)
	require.Equal(t, "today 12-m", cfg.Provider.Timeframe)
	require.Equal(t, "BR", cfg.Provider.Geo)
	require.Equal(t, "pt-BR", cfg.Provider.Language)
	require.Equal(t, 360, cfg.Provider.TZ)
	require.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	require.Equal(t, 250*time.Millisecond, cfg.Provider.Pause)

	require.Equal(t, []string{"botox", "peeling"}, cfg.Analysis.Keywords)
	require.Equal(t, 100, cfg.Analysis.SearchVolume)
	require.Equal(t, 3, cfg.Analysis.TopN)

	require.Equal(t, "out/analise.csv", cfg.Export.CSVPath)
	require.Equal(t, "analise_beleza_sp.json", cfg.Export.JSONPath)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadDefaultsWithEnv(t *testing.T) {
	t.Setenv("TRENDS_PROVIDER_ENDPOINT", "http://localhost:8000/trends")
	t.Setenv("TRENDS_ANALYSIS_TOP_N", "7")
	t.Setenv("TRENDS_PROVIDER_PAUSE", "2s")

	cfg, err := NewManager().Load("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000/trends", cfg.Provider.Endpoint)
	require.Equal(t, 7, cfg.Analysis.TopN)
	require.Equal(t, 2*time.Second, cfg.Provider.Pause)
	require.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	require.Equal(t, "analise_beleza_sp.csv", cfg.Export.CSVPath)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logger.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
provider:
  endpoint: "https://file.example.com"
`)
	t.Setenv("TRENDS_PROVIDER_ENDPOINT", "https://env.example.com")

	cfg, err := NewManager().Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.Provider.Endpoint)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewManager().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing endpoint", "server:\n  port: 8080\n", "provider.endpoint is required"},
		{"bad port", "provider:\n  endpoint: http://x\nserver:\n  port: 70000\n", "invalid server port: 70000"},
		{"negative pause", "provider:\n  endpoint: http://x\n  pause: -1s\n", "provider.pause cannot be negative"},
		{"zero timeout", "provider:\n  endpoint: http://x\n  timeout: 0s\n", "provider.timeout must be positive"},
		{"zero top", "provider:\n  endpoint: http://x\nanalysis:\n  top_n: 0\n", "analysis.top_n must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManager().Load(writeConfig(t, tt.body))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
