// Package bitbake implements the build-environment capability consumed by the
// artifact resolver: build-variable lookup, build triggering, and environment
// verification against a BitBake-style build system.
package bitbake

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/resolve"
)

// Client talks to the external build orchestrator. It implements
// resolve.BuildEnv.
//
// Parsed variable files are memoized in a process-local cache. The cache is
// populated during a single synchronous resolution and treated as read-only
// for the remainder of execution, so no locking is needed.
type Client struct {
	command string
	varsDir string
	timeout time.Duration
	cache   map[string]map[string]string
	log     zerolog.Logger
}

// compile-time interface check
var _ resolve.BuildEnv = (*Client)(nil)

// NewClient creates a client that invokes the given build command and reads
// variable .env files from varsDir. An empty varsDir disables the file cache
// and every lookup falls through to the orchestrator.
func NewClient(command, varsDir string, log zerolog.Logger) *Client {
	if command == "" {
		command = constants.DefaultBuildCommand
	}
	return &Client{
		command: command,
		varsDir: varsDir,
		cache:   make(map[string]map[string]string),
		log:     log,
	}
}

// WithTimeout bounds each triggered build job. Zero means no timeout.
// Lookups and environment checks are never bounded.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.timeout = d
	return c
}

// ConfigureVarsDir redirects variable .env reads to dir and discards any
// variables memoized from the previous directory. The resolver calls this
// once, before resolution begins, when the request carries an override.
func (c *Client) ConfigureVarsDir(dir string) {
	if dir == c.varsDir {
		return
	}
	c.varsDir = dir
	c.cache = make(map[string]map[string]string)
}

// RunBuild submits a build job to the orchestrator and blocks until it
// completes. The orchestrator's absence from PATH is a precondition failure
// reported as ErrBuildToolUnavailable, not a crash.
func (c *Client) RunBuild(ctx context.Context, job resolve.Job) error {
	path, err := exec.LookPath(c.command)
	if err != nil {
		return errors.Wrapf(errors.ErrBuildToolUnavailable, "%q", c.command)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{job.Target}
	if job.Debug {
		args = append(args, "-D")
	}

	c.log.Info().
		Str("job_id", job.ID).
		Str("command", c.command).
		Strs("args", args).
		Msg("running build job")

	cmd := exec.CommandContext(ctx, path, args...) //#nosec G204 -- command comes from config, args from internal job construction
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if stderr.Len() > 0 {
			return fmt.Errorf("%s %s failed: %s", c.command, job.Target, strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%s %s failed: %w", c.command, job.Target, err)
	}
	return nil
}

// VerifyEnvironment reports whether the build environment is usable:
// BUILDDIR must be set and point at an existing directory.
func (c *Client) VerifyEnvironment(_ context.Context) bool {
	buildDir := os.Getenv(constants.BuildDirEnvVar)
	if buildDir == "" {
		c.log.Debug().Str("env", constants.BuildDirEnvVar).Msg("build dir env var unset")
		return false
	}
	fi, err := os.Stat(buildDir)
	if err != nil || !fi.IsDir() {
		c.log.Debug().Str("build_dir", buildDir).Msg("build dir does not exist")
		return false
	}
	return true
}
