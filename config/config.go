// Package config provides swissdata process configuration.
//
// Configuration is read with Viper from an optional swissdata.toml file,
// with SWISSDATA_* environment variables taking precedence over the file
// and built-in defaults below both.
package config

// Config represents the swissdata configuration
type Config struct {
	Fetch FetchConfig `mapstructure:"fetch"`
	Log   LogConfig   `mapstructure:"log"`
}

// FetchConfig configures dataset retrieval and the on-disk cache
type FetchConfig struct {
	CacheDir             string `mapstructure:"cache_dir"`               // empty = platform user cache dir
	CacheValidityHours   int    `mapstructure:"cache_validity_hours"`    // cached copy refreshed after this window
	TimeoutSeconds       int    `mapstructure:"timeout_seconds"`         // whole-transfer HTTP timeout
	MaxRequestsPerMinute int    `mapstructure:"max_requests_per_minute"` // polite rate limit against the publisher
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}
