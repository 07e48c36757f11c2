package config

// ServerConfig identifies the MCP server and sets tool-level defaults.
type ServerConfig struct {
	Name            string `yaml:"name"`
	DefaultLanguage string `yaml:"defaultLanguage" validate:"omitempty,oneof=en nl fr de it"`
}

// UpstreamConfig configures the iRail API client.
type UpstreamConfig struct {
	BaseURL           string  `yaml:"baseURL" validate:"omitempty,url"`
	UserAgent         string  `yaml:"userAgent"`
	TimeoutSeconds    int     `yaml:"timeoutSeconds" validate:"gte=0"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
}

// StationsConfig configures the offline station dataset.
type StationsConfig struct {
	CSVURL string `yaml:"csvURL" validate:"omitempty,url"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Stations StationsConfig `yaml:"stations"`
}
