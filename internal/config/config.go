package config

import (
	"time"
)

type Config struct {
	Firefly    FireflyConfig `mapstructure:"firefly"`
	HTTP       HTTPConfig    `mapstructure:"http"`
	Log        LogConfig     `mapstructure:"log"`
	ConfigPath string        `mapstructure:"-"`
}

type FireflyConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit caps outgoing requests per second; 0 disables pacing.
	RateLimit float64 `mapstructure:"rate_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Firefly: FireflyConfig{URL: "", Token: ""},
		HTTP:    HTTPConfig{Timeout: 10 * time.Second, RateLimit: 0},
		Log:     LogConfig{Level: "warn"},
	}
}

// LoggedIn reports whether both server URL and token are set.
func (c *Config) LoggedIn() bool {
	return c.Firefly.URL != "" && c.Firefly.Token != ""
}
