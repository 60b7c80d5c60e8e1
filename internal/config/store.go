package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	AppName   = "ffly"
	EnvPrefix = "FFLY"
)

// Store reads the config file with environment overrides and writes
// credentials back to the file.
type Store struct {
	v    *viper.Viper
	path string
}

// Open loads cfgFile, or <UserConfigDir>/ffly/config.yaml when cfgFile is
// empty. The default file is created on first use.
func Open(cfgFile string) (*Store, error) {
	path := cfgFile
	if path == "" {
		appDir, err := AppDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}
		path = filepath.Join(appDir, "config.yaml")

		if err := createDefaultConfig(path); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v := newViper(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	return &Store{v: v, path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Config() (*Config, error) {
	cfg := NewDefault()
	if err := s.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.Firefly.URL = strings.TrimSpace(cfg.Firefly.URL)
	cfg.Firefly.Token = strings.TrimSpace(cfg.Firefly.Token)
	cfg.ConfigPath = s.path
	return cfg, nil
}

// SetCredentials saves the server URL and token to the config file.
func (s *Store) SetCredentials(url, token string) error {
	return s.write(map[string]any{
		"firefly.url":   url,
		"firefly.token": token,
	})
}

func (s *Store) ClearCredentials() error {
	return s.SetCredentials("", "")
}

// write updates keys in the file only. Environment overrides are never
// persisted.
func (s *Store) write(values map[string]any) error {
	fileOnly := newViper(s.path)
	if err := fileOnly.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	for k, val := range values {
		fileOnly.Set(k, val)
		s.v.Set(k, val)
	}

	if err := fileOnly.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := NewDefault()
	v.SetDefault("firefly.url", def.Firefly.URL)
	v.SetDefault("firefly.token", def.Firefly.Token)
	v.SetDefault("http.timeout", def.HTTP.Timeout.String())
	v.SetDefault("http.rate_limit", def.HTTP.RateLimit)
	v.SetDefault("log.level", def.Log.Level)
	return v
}

// AppDir returns the directory holding the config file.
func AppDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+AppName), nil
	}

	return filepath.Join(configDir, AppName), nil
}

func createDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := newViper(path).WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
