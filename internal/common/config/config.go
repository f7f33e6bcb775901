// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	User    UserConfig    `mapstructure:"user"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Poll    PollConfig    `mapstructure:"poll"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the client at the remote job/profile backend.
// Timeouts are in milliseconds, matching the rest of the config.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	ProfileTimeout int    `mapstructure:"profile_timeout"` // milliseconds, profile loads and status checks
	UploadTimeout  int    `mapstructure:"upload_timeout"`  // milliseconds, multipart resume uploads
}

type UserConfig struct {
	DefaultUserID string `mapstructure:"default_user_id"`
}

// CacheConfig controls the optional local Redis cache used as the
// last-known-profile fallback. Disabled means in-memory only.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Redis   RedisConfig `mapstructure:"redis"`
	TTL     int         `mapstructure:"ttl"` // seconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PollConfig controls the background auth-status poller.
type PollConfig struct {
	AuthStatusInterval int `mapstructure:"auth_status_interval"` // milliseconds
}

type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Endpoint joins the configured base URL with a path.
func (a APIConfig) Endpoint(path string) string {
	return fmt.Sprintf("%s%s", a.BaseURL, path)
}
