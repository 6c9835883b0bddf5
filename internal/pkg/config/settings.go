package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings
const (
	EnvConfigFile = "CRYPTO_PROVIDER_CONFIG_FILE"
	EnvLogLevel   = "CRYPTO_PROVIDER_LOG_LEVEL"
	EnvLogType    = "CRYPTO_PROVIDER_LOG_TYPE"
	EnvLogFile    = "CRYPTO_PROVIDER_LOG_FILE"
	EnvInstall    = "CRYPTO_PROVIDER_INSTALL"
	EnvRSAKeySize = "CRYPTO_PROVIDER_RSA_KEY_SIZE"
	EnvKeyDir     = "CRYPTO_PROVIDER_KEY_DIR"
)

// Settings aggregates everything the CLI and the adapter bootstrap need.
type Settings struct {
	Logger   LoggerSettings   `mapstructure:"logger" yaml:"logger"`
	Provider ProviderSettings `mapstructure:"provider" yaml:"provider"`
}

// DefaultSettings returns console logging at info level and a non-installing provider.
func DefaultSettings() *Settings {
	return &Settings{
		Logger: LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeConsole,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Provider: ProviderSettings{
			Install:    false,
			RSAKeySize: 2048,
			KeyDir:     ".",
		},
	}
}

// LoadSettings reads a YAML settings file on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return settings, nil
}

// ApplyEnv overrides settings with values from the environment.
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Logger.LogLevel = v
	}
	if v := os.Getenv(EnvLogType); v != "" {
		s.Logger.LogType = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.Logger.FilePath = v
	}
	if v := os.Getenv(EnvInstall); v != "" {
		install, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvInstall, v, err)
		}
		s.Provider.Install = install
	}
	if v := os.Getenv(EnvRSAKeySize); v != "" {
		size, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvRSAKeySize, v, err)
		}
		s.Provider.RSAKeySize = uint(size)
	}
	if v := os.Getenv(EnvKeyDir); v != "" {
		s.Provider.KeyDir = v
	}
	return nil
}

// Validate checks the logger and provider sections.
func (s *Settings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	return s.Provider.Validate()
}
