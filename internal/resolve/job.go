package resolve

import (
	"context"

	"github.com/google/uuid"

	"github.com/avalluri/wic/internal/constants"
)

// JobKind distinguishes the two kinds of build jobs the resolver submits.
type JobKind int

// Build job kinds.
const (
	// JobImage builds a named image (rootfs and deploy artifacts).
	JobImage JobKind = iota

	// JobNativeTools builds the native toolchain package.
	JobNativeTools
)

// String returns the kind name for logging.
func (k JobKind) String() string {
	switch k {
	case JobImage:
		return "image"
	case JobNativeTools:
		return "native-tools"
	default:
		return "unknown"
	}
}

// Job is a request to the external build trigger. Jobs are constructed on
// demand, consumed once, and discarded; a failed job is terminal for the
// whole resolution and is never retried.
type Job struct {
	// ID uniquely identifies the job in logs.
	ID string

	// Kind selects what the job builds.
	Kind JobKind

	// Target is the build target name.
	Target string

	// Debug forwards the request's debug flag to the build orchestrator.
	Debug bool
}

// NewImageJob constructs a job that builds the named image.
func NewImageJob(image string, debug bool) Job {
	return Job{
		ID:     uuid.NewString(),
		Kind:   JobImage,
		Target: image,
		Debug:  debug,
	}
}

// NewNativeToolsJob constructs a job that builds the native toolchain package.
func NewNativeToolsJob(debug bool) Job {
	return Job{
		ID:     uuid.NewString(),
		Kind:   JobNativeTools,
		Target: constants.NativeToolsTarget,
		Debug:  debug,
	}
}

// BuildEnv is the injectable capability covering the external build system.
// The production implementation lives in internal/bitbake; tests supply fakes
// so the resolver has no process-level dependency on an external executable.
type BuildEnv interface {
	// LookupVariable queries the build-variable lookup service for a variable
	// scoped to the given image. The second return is false when the variable
	// is unset. An error indicates the lookup itself could not run.
	LookupVariable(ctx context.Context, name, image string) (string, bool, error)

	// RunBuild submits a build job and blocks until it completes.
	// A non-nil error means the job failed; jobs are never retried.
	RunBuild(ctx context.Context, job Job) error

	// VerifyEnvironment reports whether the build environment is usable.
	VerifyEnvironment(ctx context.Context) bool
}
