package relay

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete relay daemon configuration
type Config struct {
	Server  ServerSettings  `hcl:"server,block"`
	Advisor AdvisorSettings `hcl:"advisor,block"`
}

// ServerSettings contains listener and connection settings
type ServerSettings struct {
	Addr         string `hcl:"addr,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	PingInterval int    `hcl:"ping_interval,optional"`
	ReadTimeout  int    `hcl:"read_timeout,optional"`
}

// AdvisorSettings contains settings for the recommendation engine
type AdvisorSettings struct {
	ParametersFile string `hcl:"parameters_file,optional"`
}

// DefaultConfig returns default relay configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Addr:         "localhost:8099",
			LogLevel:     "info",
			PingInterval: 30,
			ReadTimeout:  120,
		},
		Advisor: AdvisorSettings{
			ParametersFile: "",
		},
	}
}

// LoadConfig loads relay configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Server.Addr == "" {
		config.Server.Addr = defaults.Server.Addr
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Server.PingInterval == 0 {
		config.Server.PingInterval = defaults.Server.PingInterval
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = defaults.Server.ReadTimeout
	}

	return &config, nil
}

// Validate validates the relay configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}

	if c.Server.PingInterval <= 0 {
		return fmt.Errorf("ping interval must be positive")
	}

	if c.Server.ReadTimeout <= c.Server.PingInterval {
		return fmt.Errorf("read timeout must exceed ping interval")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Server.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	return nil
}
