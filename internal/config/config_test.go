package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
picker:
  start_date: "2025-06-01"
  end_date: "2025-08-30"
  excluded_dates: "2025-06-10,2025-06-11"
  random_seed: 42
server:
  addr: "127.0.0.1:9000"
  session_ttl: "5m"
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", cfg.Picker.StartDate)
	assert.Equal(t, "2025-08-30", cfg.Picker.EndDate)
	assert.Equal(t, "2025-06-10,2025-06-11", cfg.Picker.ExcludedDates)
	assert.Equal(t, int64(42), cfg.Picker.RandomSeed)
	assert.Equal(t, 30, cfg.Picker.DefaultSpanDays, "default applies")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.GetSessionTTL())
	assert.Equal(t, 10*time.Second, cfg.Server.GetShutdownTimeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "picker:\n  default_span_days: 14\n")
	t.Setenv("DATEPICKER_SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 14, cfg.Picker.DefaultSpanDays)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Picker: PickerConfig{DefaultSpanDays: 30},
			Server: ServerConfig{Addr: ":8080"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"malformed start date", func(c *Config) { c.Picker.StartDate = "06/01/2025" }, true},
		{"zero span", func(c *Config) { c.Picker.DefaultSpanDays = 0 }, true},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"bad ttl", func(c *Config) { c.Server.SessionTTL = "soon" }, true},
		{"negative timeout", func(c *Config) { c.Server.ShutdownTimeout = "-1s" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
