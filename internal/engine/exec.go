package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// ExecBuilder dispatches to the external engine executable. The executable is
// resolved from the native sysroot's bin directories first, then PATH, so a
// freshly built toolchain sysroot always wins over stale host installs.
type ExecBuilder struct {
	command string
	log     zerolog.Logger
}

// compile-time interface check
var _ Builder = (*ExecBuilder)(nil)

// NewExecBuilder creates an exec-based engine dispatcher invoking the given
// command name.
func NewExecBuilder(command string, log zerolog.Logger) *ExecBuilder {
	if command == "" {
		command = constants.DefaultEngineCommand
	}
	return &ExecBuilder{command: command, log: log}
}

// Build invokes the engine with the validated artifact set. A missing engine
// executable is reported as ErrEngineUnavailable; a non-zero exit as
// ErrEngineFailed with the engine's stderr attached.
func (b *ExecBuilder) Build(ctx context.Context, in Input) error {
	path, err := b.locate(in.NativeSysroot)
	if err != nil {
		return err
	}

	args := []string{
		"--wks", in.Descriptor,
		"--kernel-dir", in.KernelDir,
		"--native-sysroot", in.NativeSysroot,
		"--outdir", in.Options.OutDir,
	}
	if in.RootfsArgs != "" {
		args = append(args, "--rootfs-args", in.RootfsArgs)
	}
	if in.BootimgDir != "" {
		args = append(args, "--bootimg-dir", in.BootimgDir)
	}
	if in.Options.Compressor != "" {
		args = append(args, "--compress-with", in.Options.Compressor)
	}
	if in.Options.GenerateBmap {
		args = append(args, "--bmap")
	}
	if in.Options.Debug {
		args = append(args, "--debug")
	}

	b.log.Info().Str("engine", path).Str("descriptor", in.Descriptor).Msg("building image")

	cmd := exec.CommandContext(ctx, path, args...) //#nosec G204 -- engine path resolved internally, args from validated artifact set
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if stderr.Len() > 0 {
			return fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), errors.ErrEngineFailed)
		}
		return fmt.Errorf("%v: %w", err, errors.ErrEngineFailed)
	}
	return nil
}

// locate resolves the engine executable: native sysroot bin directories
// first, then PATH.
func (b *ExecBuilder) locate(nativeSysroot string) (string, error) {
	if nativeSysroot != "" {
		for _, bin := range []string{"usr/bin", "bin", "usr/sbin", "sbin"} {
			candidate := filepath.Join(nativeSysroot, bin, b.command)
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}
	if path, err := exec.LookPath(b.command); err == nil {
		return path, nil
	}
	return "", errors.Wrapf(errors.ErrEngineUnavailable, "%q", b.command)
}

// isExecutable reports whether path is a regular file with an execute bit set.
func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}
