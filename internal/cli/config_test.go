package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalluri/wic/internal/config"
	"github.com/avalluri/wic/internal/constants"
)

func TestConfigShow_Defaults(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	output, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, output, "build:")
	assert.Contains(t, output, "command: "+constants.DefaultBuildCommand)
	assert.Contains(t, output, "engine:")
	assert.Contains(t, output, constants.DefaultEngineCommand)
}

func TestConfigShow_JSON(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	output, err := executeCommand(t, "config", "show", "--format", "json")

	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(output), &cfg))
	assert.Equal(t, constants.DefaultBuildCommand, cfg.Build.Command)
	assert.Equal(t, constants.DefaultEngineCommand, cfg.Engine.Command)
}

func TestConfigShow_ReflectsGlobalConfigFile(t *testing.T) {
	wicHome := t.TempDir()
	t.Setenv("WIC_HOME", wicHome)

	configContent := "build:\n  command: custom-orchestrator\n"
	require.NoError(t, os.WriteFile(filepath.Join(wicHome, "config.yaml"), []byte(configContent), 0o600))

	output, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, output, "custom-orchestrator")
}
