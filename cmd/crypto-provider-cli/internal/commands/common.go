package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MGTheTrain/crypto-provider/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/config"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/joho/godotenv"
)

// dotEnvFile is loaded from the working directory when present
const dotEnvFile = ".env"

// loadSettings layers .env, the optional YAML settings file and the environment over the defaults.
func loadSettings() (*config.Settings, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}

	settings := config.DefaultSettings()
	if path := os.Getenv(config.EnvConfigFile); path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// environment holds what every command handler shares
type environment struct {
	settings *config.Settings
	logger   logger.Logger
	registry *cryptography.ProviderRegistry
	adapter  *cryptography.XCryptoAdapter
}

var (
	sharedEnvironment     *environment
	sharedEnvironmentErr  error
	sharedEnvironmentOnce sync.Once
)

// setupEnvironment returns the environment shared by all command groups, building it on first use.
func setupEnvironment() (*environment, error) {
	sharedEnvironmentOnce.Do(func() {
		sharedEnvironment, sharedEnvironmentErr = newEnvironment()
	})
	return sharedEnvironment, sharedEnvironmentErr
}

// newEnvironment loads the settings and resolves the XCrypto adapter over the process-wide registry.
func newEnvironment() (*environment, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	loggerInstance, err := setupLogger(&settings.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	registry := cryptography.DefaultRegistry()
	resolver := cryptography.NewProviderResolver(registry,
		cryptography.WithInstall(settings.Provider.Install),
		cryptography.WithLogger(loggerInstance),
	)

	adapter, err := cryptography.NewXCryptoAdapter(resolver, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s adapter: %w", cryptography.XCryptoProviderName, err)
	}

	return &environment{
		settings: settings,
		logger:   loggerInstance,
		registry: registry,
		adapter:  adapter,
	}, nil
}
