package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppConfigFileDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  name: test-rail\n")
	if err := LoadAppConfigFile(path); err != nil {
		t.Fatalf("LoadAppConfigFile: %v", err)
	}

	if Config.Server.Name != "test-rail" {
		t.Errorf("name = %q", Config.Server.Name)
	}
	if Config.Server.DefaultLanguage != DefaultLanguage {
		t.Errorf("language default not applied: %q", Config.Server.DefaultLanguage)
	}
	if Config.Upstream.BaseURL != DefaultBaseURL {
		t.Errorf("base URL default not applied: %q", Config.Upstream.BaseURL)
	}
	if Config.Upstream.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("timeout default not applied: %d", Config.Upstream.TimeoutSeconds)
	}
	if Config.Upstream.RequestsPerSecond != DefaultRequestsPerSecond {
		t.Errorf("rate default not applied: %v", Config.Upstream.RequestsPerSecond)
	}
}

func TestLoadAppConfigFileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  defaultLanguage: nl
upstream:
  baseURL: https://irail.example.test/v1
  timeoutSeconds: 5
  requestsPerSecond: 1
`)
	if err := LoadAppConfigFile(path); err != nil {
		t.Fatalf("LoadAppConfigFile: %v", err)
	}
	if Config.Upstream.BaseURL != "https://irail.example.test/v1" {
		t.Errorf("base URL = %q", Config.Upstream.BaseURL)
	}
	if Config.Upstream.TimeoutSeconds != 5 || Config.Upstream.RequestsPerSecond != 1 {
		t.Errorf("upstream = %+v", Config.Upstream)
	}
	if Config.Server.DefaultLanguage != "nl" {
		t.Errorf("language = %q", Config.Server.DefaultLanguage)
	}
}

func TestLoadAppConfigFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [unclosed"},
		{"bad language", "server:\n  defaultLanguage: zz\n"},
		{"bad url", "upstream:\n  baseURL: not-a-url\n"},
		{"negative timeout", "upstream:\n  timeoutSeconds: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if err := LoadAppConfigFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadAppConfigMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if Config.Server.Name != DefaultServerName {
		t.Errorf("name = %q", Config.Server.Name)
	}
	if Config.Stations.CSVURL != DefaultStationsCSVURL {
		t.Errorf("csv url = %q", Config.Stations.CSVURL)
	}
}
