package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Fetch defaults
	v.SetDefault("fetch.cache_dir", "")              // resolve platform cache dir at use time
	v.SetDefault("fetch.cache_validity_hours", 24)   // registry updates are infrequent
	v.SetDefault("fetch.timeout_seconds", 300)       // full archive download, not per read
	v.SetDefault("fetch.max_requests_per_minute", 30)

	// Log defaults
	v.SetDefault("log.json", false)
}
