// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every key has a sensible default so the server runs with no config file
// at all.
package config
