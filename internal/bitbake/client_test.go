package bitbake_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalluri/wic/internal/bitbake"
	"github.com/avalluri/wic/internal/constants"
	wicerrors "github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/resolve"
)

// missingCommand is an executable name that is guaranteed not to be on PATH.
const missingCommand = "wic-test-no-such-orchestrator"

func TestRunBuild_ToolUnavailable(t *testing.T) {
	t.Parallel()

	c := bitbake.NewClient(missingCommand, "", zerolog.Nop())
	err := c.RunBuild(context.Background(), resolve.NewImageJob("core-image-minimal", false))

	require.ErrorIs(t, err, wicerrors.ErrBuildToolUnavailable)
	assert.Contains(t, err.Error(), missingCommand)
}

func TestVerifyEnvironment(t *testing.T) {
	c := bitbake.NewClient(missingCommand, "", zerolog.Nop())

	t.Run("unset build dir", func(t *testing.T) {
		t.Setenv(constants.BuildDirEnvVar, "")
		assert.False(t, c.VerifyEnvironment(context.Background()))
	})

	t.Run("nonexistent build dir", func(t *testing.T) {
		t.Setenv(constants.BuildDirEnvVar, "/nonexistent/build")
		assert.False(t, c.VerifyEnvironment(context.Background()))
	})

	t.Run("existing build dir", func(t *testing.T) {
		t.Setenv(constants.BuildDirEnvVar, t.TempDir())
		assert.True(t, c.VerifyEnvironment(context.Background()))
	})
}

func TestLookupVariable_FromEnvFile(t *testing.T) {
	t.Parallel()

	varsDir := t.TempDir()
	content := `# build variables for core-image-minimal
IMAGE_ROOTFS="/build/tmp/rootfs"
export DEPLOY_DIR_IMAGE="/build/tmp/deploy"
UNQUOTED=/plain/path

MALFORMED LINE
`
	path := filepath.Join(varsDir, "core-image-minimal.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c := bitbake.NewClient(missingCommand, varsDir, zerolog.Nop())

	tests := []struct {
		name      string
		variable  string
		want      string
		wantFound bool
	}{
		{name: "quoted value", variable: "IMAGE_ROOTFS", want: "/build/tmp/rootfs", wantFound: true},
		{name: "export prefix stripped", variable: "DEPLOY_DIR_IMAGE", want: "/build/tmp/deploy", wantFound: true},
		{name: "unquoted value", variable: "UNQUOTED", want: "/plain/path", wantFound: true},
		{name: "unset variable", variable: "RECIPE_SYSROOT_NATIVE", wantFound: false},
		{name: "malformed line skipped", variable: "MALFORMED", wantFound: false},
	}

	// Subtests share the client's single-threaded variable cache,
	// so they are not parallelized.
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, found, err := c.LookupVariable(context.Background(), tc.variable, "core-image-minimal")
			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, found)
			assert.Equal(t, tc.want, value)
		})
	}
}

func TestLookupVariable_MissingFileAndTool(t *testing.T) {
	t.Parallel()

	// No .env file and no orchestrator on PATH: the variable is simply unset.
	c := bitbake.NewClient(missingCommand, t.TempDir(), zerolog.Nop())
	value, found, err := c.LookupVariable(context.Background(), "IMAGE_ROOTFS", "core-image-minimal")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestConfigureVarsDir_RedirectsAndResetsCache(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "img.env"), []byte("A=\"old\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "img.env"), []byte("A=\"new\"\n"), 0o600))

	c := bitbake.NewClient(missingCommand, dirA, zerolog.Nop())
	value, found, err := c.LookupVariable(context.Background(), "A", "img")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "old", value)

	// Redirecting drops the memoized map, so the next lookup reads dirB.
	c.ConfigureVarsDir(dirB)
	value, found, err = c.LookupVariable(context.Background(), "A", "img")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", value)
}

func TestLookupVariable_CachesPerImage(t *testing.T) {
	t.Parallel()

	varsDir := t.TempDir()
	path := filepath.Join(varsDir, "img.env")
	require.NoError(t, os.WriteFile(path, []byte("A=\"1\"\n"), 0o600))

	c := bitbake.NewClient(missingCommand, varsDir, zerolog.Nop())
	_, found, err := c.LookupVariable(context.Background(), "A", "img")
	require.NoError(t, err)
	require.True(t, found)

	// The file is parsed once; later changes are not observed.
	require.NoError(t, os.WriteFile(path, []byte("A=\"2\"\nB=\"3\"\n"), 0o600))
	_, found, err = c.LookupVariable(context.Background(), "B", "img")
	require.NoError(t, err)
	assert.False(t, found)
}
