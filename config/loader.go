package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

const (
	DefaultServerName        = "irail-mcp"
	DefaultLanguage          = "en"
	DefaultBaseURL           = "https://api.irail.be/v1"
	DefaultTimeoutSeconds    = 30
	DefaultRequestsPerSecond = 3
	DefaultStationsCSVURL    = "https://raw.githubusercontent.com/iRail/stations/master/stations.csv"
)

// LoadAppConfig loads the configuration from config.yml. A missing file is
// not an error; the defaults apply.
func LoadAppConfig() error {
	paths := []string{os.Getenv("IRAIL_MCP_CONFIG"), "config.yml"}
	for _, p := range paths {
		if p == "" {
			continue
		}
		err := LoadAppConfigFile(p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	Config = withDefaults(AppConfig{})
	return nil
}

// LoadAppConfigFile loads and validates the configuration from path.
func LoadAppConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = withDefaults(cfg)
	return nil
}

func withDefaults(cfg AppConfig) AppConfig {
	if cfg.Server.Name == "" {
		cfg.Server.Name = DefaultServerName
	}
	if cfg.Server.DefaultLanguage == "" {
		cfg.Server.DefaultLanguage = DefaultLanguage
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultBaseURL
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Upstream.RequestsPerSecond == 0 {
		cfg.Upstream.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Stations.CSVURL == "" {
		cfg.Stations.CSVURL = DefaultStationsCSVURL
	}
	return cfg
}
