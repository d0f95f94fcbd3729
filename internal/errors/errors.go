// Package errors provides centralized error handling for wic.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrMissingArtifactSpec indicates that explicit-path resolution is missing
	// one or more of the required artifact directories. The wrapping message
	// enumerates every missing field, not just the first.
	ErrMissingArtifactSpec = errors.New("missing artifact specification")

	// ErrBuildToolUnavailable indicates that a build was requested but the
	// external build orchestrator is not on the execution path.
	ErrBuildToolUnavailable = errors.New("build tool not found on PATH")

	// ErrRootfsBuildFailed indicates that a triggered root filesystem build
	// job reported failure. Build jobs are never retried.
	ErrRootfsBuildFailed = errors.New("rootfs build failed")

	// ErrNativeSysrootBuildFailed indicates that the triggered native toolchain
	// build job reported failure.
	ErrNativeSysrootBuildFailed = errors.New("native sysroot build failed")

	// ErrEnvironmentCheckFailed indicates that the pre-build environment
	// verification predicate returned false.
	ErrEnvironmentCheckFailed = errors.New("build environment check failed")

	// ErrImageDescriptorNotFound indicates that no matching image description
	// file was found by name in any of the searched directories.
	ErrImageDescriptorNotFound = errors.New("image description file not found")

	// ErrArtifactDirectoryMissing indicates that a looked-up artifact path does
	// not exist as a directory. The wrapping message names the artifact kind
	// and path; only the first missing directory is reported.
	ErrArtifactDirectoryMissing = errors.New("artifact directory does not exist")

	// ErrRootfsDirectoryMissing indicates that an explicitly supplied rootfs
	// directory does not exist.
	ErrRootfsDirectoryMissing = errors.New("rootfs directory does not exist")

	// ErrBootimgDirectoryMissing indicates that an explicitly supplied bootimg
	// directory does not exist.
	ErrBootimgDirectoryMissing = errors.New("bootimg directory does not exist")

	// ErrKernelDirectoryMissing indicates that an explicitly supplied kernel
	// directory does not exist.
	ErrKernelDirectoryMissing = errors.New("kernel directory does not exist")

	// ErrNativeSysrootMissing indicates that an explicitly supplied native
	// sysroot directory does not exist.
	ErrNativeSysrootMissing = errors.New("native sysroot directory does not exist")

	// ErrNativeSysrootUnavailable indicates that fallback resolution for the
	// native sysroot (build then lookup) still yielded no usable path.
	ErrNativeSysrootUnavailable = errors.New("native sysroot unavailable")

	// ErrInvalidRootfsEntry indicates a malformed rootfs mapping entry
	// (e.g. an empty key or path in a key=dir flag).
	ErrInvalidRootfsEntry = errors.New("invalid rootfs entry")

	// ErrDuplicateRootfsKey indicates a rootfs mapping key was supplied twice.
	ErrDuplicateRootfsKey = errors.New("duplicate rootfs key")

	// ErrInvalidCompressor indicates an unknown image compression method.
	ErrInvalidCompressor = errors.New("invalid compressor")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEngineFailed indicates the image-construction engine reported failure.
	ErrEngineFailed = errors.New("image engine failed")

	// ErrEngineUnavailable indicates the image-construction engine executable
	// could not be located.
	ErrEngineUnavailable = errors.New("image engine not found")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidBuild indicates an invalid build configuration value.
	ErrConfigInvalidBuild = errors.New("invalid build configuration")

	// ErrConfigInvalidEngine indicates an invalid engine configuration value.
	ErrConfigInvalidEngine = errors.New("invalid engine configuration")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownListKind indicates an unknown topic was passed to the list command.
	ErrUnknownListKind = errors.New("unknown list kind")
)
