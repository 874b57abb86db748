package relay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	content := `
server {
  addr          = "0.0.0.0:9000"
  log_level     = "debug"
  ping_interval = 15
  read_timeout  = 45
}

advisor {
  parameters_file = "/var/lib/advisor/params.json"
}
`
	path := filepath.Join(t.TempDir(), "relay.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Server.PingInterval)
	assert.Equal(t, 45, cfg.Server.ReadTimeout)
	assert.Equal(t, "/var/lib/advisor/params.json", cfg.Advisor.ParametersFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigPartialFileFillsDefaults(t *testing.T) {
	t.Parallel()

	content := `
server {
  addr = "localhost:7000"
}

advisor {}
`
	path := filepath.Join(t.TempDir(), "relay.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Server.PingInterval)
	assert.Equal(t, 120, cfg.Server.ReadTimeout)
}

func TestLoadConfigBadHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "relay.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero ping", func(c *Config) { c.Server.PingInterval = 0 }},
		{"read timeout under ping", func(c *Config) { c.Server.ReadTimeout = c.Server.PingInterval }},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
