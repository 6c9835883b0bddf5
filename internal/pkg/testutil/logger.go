// Package testutil holds helpers shared by the unit tests.
package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-provider/internal/pkg/config"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the process logger at debug level and returns it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
