package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalluri/wic/internal/constants"
)

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, false))
	assert.Equal(t, zerolog.WarnLevel, selectLevel(false, true))
	assert.Equal(t, zerolog.InfoLevel, selectLevel(false, false))
}

func TestInitLoggerWithWriter(t *testing.T) {
	// Not parallel: updates the global zerolog logger.
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(false, false, &buf)

	logger.Info().Str("image", "core-image-minimal").Msg("resolving")
	logger.Debug().Msg("hidden at info level")

	assert.Contains(t, buf.String(), "resolving")
	assert.Contains(t, buf.String(), "core-image-minimal")
	assert.NotContains(t, buf.String(), "hidden at info level")
}

func TestInitLoggerWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(true, false, &buf)

	logger.Debug().Msg("debug visible")

	assert.Contains(t, buf.String(), "debug visible")
}

func TestInitLogger_CreatesLogFile(t *testing.T) {
	wicHome := t.TempDir()
	t.Setenv("WIC_HOME", wicHome)

	logger := InitLogger(false, false)
	logger.Info().Msg("log file smoke test")
	CloseLogFile()

	logPath := filepath.Join(wicHome, constants.LogsDir, constants.CLILogFileName)
	assert.FileExists(t, logPath)
}

func TestLogFilePath(t *testing.T) {
	wicHome := t.TempDir()
	t.Setenv("WIC_HOME", wicHome)

	path, err := LogFilePath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wicHome, constants.LogsDir, constants.CLILogFileName), path)
}
