package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/tui"
)

func TestParseRootfsFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		wantErr error
		check   func(t *testing.T, keys []string)
	}{
		{
			name:   "bare directory maps to default key",
			values: []string{"/tmp/rootfs"},
			check: func(t *testing.T, keys []string) {
				assert.Equal(t, []string{constants.DefaultRootfsKey}, keys)
			},
		},
		{
			name:   "keyed entries preserve order",
			values: []string{"ROOTFS_DIR=/tmp/a", "SECOND=/tmp/b"},
			check: func(t *testing.T, keys []string) {
				assert.Equal(t, []string{"ROOTFS_DIR", "SECOND"}, keys)
			},
		},
		{
			name:    "duplicate key rejected",
			values:  []string{"ROOTFS_DIR=/tmp/a", "ROOTFS_DIR=/tmp/b"},
			wantErr: errors.ErrDuplicateRootfsKey,
		},
		{
			name:    "bare dir then default key collides",
			values:  []string{"/tmp/a", "ROOTFS_DIR=/tmp/b"},
			wantErr: errors.ErrDuplicateRootfsKey,
		},
		{
			name:    "empty key rejected",
			values:  []string{"=/tmp/a"},
			wantErr: errors.ErrInvalidRootfsEntry,
		},
		{
			name:    "empty dir rejected",
			values:  []string{"KEY="},
			wantErr: errors.ErrInvalidRootfsEntry,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rootfs, err := parseRootfsFlags(tt.values)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, rootfs.Keys())
			}
		})
	}
}

func TestCreate_MissingDescriptorArg(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	_, err := executeCommand(t, "create")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestCreate_InvalidCompressor(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	_, err := executeCommand(t, "create", "image.wks", "-c", "zip")

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCompressor)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestCreate_MissingExplicitPaths(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	output, err := executeCommand(t, "create", "image.wks", "-r", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingArtifactSpec)
	assert.Equal(t, ExitError, ExitCodeForError(err))
	assert.Contains(t, output, "bootimg dir (-b)")
	assert.Contains(t, output, "kernel dir (-k)")
	assert.Contains(t, output, "native sysroot (-n)")
}

func TestCreate_ExplicitPaths_MissingRootfsDir(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	dir := t.TempDir()
	_, err := executeCommand(t, "create", "image.wks",
		"-r", filepath.Join(dir, "no-such-rootfs"),
		"-b", dir,
		"-k", dir,
		"-n", dir,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRootfsDirectoryMissing)
	assert.Equal(t, ExitError, ExitCodeForError(err))
}

func TestCreate_FailurePointsAtLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WIC_HOME", home)

	dir := t.TempDir()
	output, err := executeCommand(t, "create", "image.wks",
		"-r", filepath.Join(dir, "no-such-rootfs"),
		"-b", dir,
		"-k", dir,
		"-n", dir,
	)

	require.Error(t, err)
	assert.Contains(t, output, filepath.Join(home, "logs", "wic.log"))
}

func TestReportFailure_NotesInterrupt(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	interrupted := make(chan struct{})
	close(interrupted)

	var buf bytes.Buffer
	reportFailure(tui.NewOutput(&buf, OutputText), interrupted, errors.ErrEngineFailed)

	assert.Contains(t, buf.String(), "interrupted")
	assert.Contains(t, buf.String(), errors.ErrEngineFailed.Error())
}

func TestReportFailure_NoInterrupt(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	var buf bytes.Buffer
	reportFailure(tui.NewOutput(&buf, OutputText), nil, errors.ErrEngineFailed)

	assert.NotContains(t, buf.String(), "interrupted")
	assert.Contains(t, buf.String(), errors.ErrEngineFailed.Error())
}

// writeFakeEngine installs a shell script engine under the sysroot's usr/bin
// that records its arguments.
func writeFakeEngine(t *testing.T, sysroot, argsFile string) {
	t.Helper()

	binDir := filepath.Join(sysroot, "usr", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o750))

	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\nexit 0\n"
	path := filepath.Join(binDir, constants.DefaultEngineCommand)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700)) //#nosec G306 -- test fixture must be executable
}

func TestCreate_ExplicitPaths_DispatchesToEngine(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	rootfs := t.TempDir()
	bootimg := t.TempDir()
	kernel := t.TempDir()
	sysroot := t.TempDir()
	outDir := t.TempDir()
	argsFile := filepath.Join(t.TempDir(), "engine-args")
	writeFakeEngine(t, sysroot, argsFile)

	output, err := executeCommand(t, "create", "image.wks",
		"-r", rootfs,
		"-b", bootimg,
		"-k", kernel,
		"-n", sysroot,
		"-o", outDir,
		"-c", "gzip",
		"-m",
	)

	require.NoError(t, err)
	assert.Contains(t, output, "image created in "+outDir)

	args, readErr := os.ReadFile(argsFile) //#nosec G304 -- test-owned path
	require.NoError(t, readErr)
	recorded := string(args)
	assert.Contains(t, recorded, "--wks image.wks")
	assert.Contains(t, recorded, "--rootfs-args ROOTFS_DIR="+rootfs)
	assert.Contains(t, recorded, "--bootimg-dir "+bootimg)
	assert.Contains(t, recorded, "--kernel-dir "+kernel)
	assert.Contains(t, recorded, "--native-sysroot "+sysroot)
	assert.Contains(t, recorded, "--outdir "+outDir)
	assert.Contains(t, recorded, "--compress-with gzip")
	assert.Contains(t, recorded, "--bmap")
}

func TestCreate_ResolutionFailureSkipsEngine(t *testing.T) {
	t.Setenv("WIC_HOME", t.TempDir())

	dir := t.TempDir()
	sysroot := t.TempDir()
	argsFile := filepath.Join(t.TempDir(), "engine-args")
	writeFakeEngine(t, sysroot, argsFile)

	_, err := executeCommand(t, "create", "image.wks",
		"-r", filepath.Join(dir, "missing"),
		"-b", dir,
		"-k", dir,
		"-n", sysroot,
	)

	require.Error(t, err)
	assert.NoFileExists(t, argsFile)
}
