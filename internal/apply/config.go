// internal/apply/config.go
package apply

import "time"

type Config struct {
	SubmitTimeout time.Duration
	UploadTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		SubmitTimeout: 30 * time.Second,
		UploadTimeout: 30 * time.Second,
	}
}
