// Package constants provides centralized constant values used throughout wic.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by wic for organizing data.
const (
	// WicHome is the hidden directory name where wic stores configuration and logs.
	// This directory is created in the user's home directory.
	WicHome = ".wic"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "wic.log"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before log rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of rotated log files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Build-variable names queried from the build system for a given image.
const (
	// VarImageRootfs names the variable holding the image's root filesystem directory.
	VarImageRootfs = "IMAGE_ROOTFS"

	// VarDeployDir names the variable holding the kernel/bootloader deploy directory.
	VarDeployDir = "DEPLOY_DIR_IMAGE"

	// VarNativeSysroot names the variable holding the native toolchain sysroot.
	VarNativeSysroot = "RECIPE_SYSROOT_NATIVE"

	// VarWksFileDir names the variable holding an extra descriptor search directory.
	VarWksFileDir = "WKS_FILE_DIR"
)

// Build-trigger targets and tooling.
const (
	// NativeToolsTarget is the build target that produces the native toolchain sysroot.
	NativeToolsTarget = "wic-tools"

	// DefaultBuildCommand is the build orchestrator executable invoked for build jobs
	// and variable lookups. Must be discoverable on PATH.
	DefaultBuildCommand = "bitbake"

	// DefaultEngineCommand is the image-construction engine executable. It is
	// resolved from the native sysroot's bin directories before falling back to PATH.
	DefaultEngineCommand = "wic-assemble"

	// BuildDirEnvVar is the environment variable naming the build directory.
	// A usable build environment requires it to point at an existing directory.
	BuildDirEnvVar = "BUILDDIR"
)

// Descriptor and rootfs-mapping conventions.
const (
	// WksExtension is the file extension of image description files.
	WksExtension = ".wks"

	// DefaultRootfsKey is the mapping key for the primary root filesystem
	// when no explicit key is given.
	DefaultRootfsKey = "ROOTFS_DIR"
)

// Compression methods accepted by the image engine.
const (
	// CompressGzip compresses the final image with gzip.
	CompressGzip = "gzip"

	// CompressBzip2 compresses the final image with bzip2.
	CompressBzip2 = "bzip2"

	// CompressXz compresses the final image with xz.
	CompressXz = "xz"
)

// Compressors returns the list of valid compression method names.
func Compressors() []string {
	return []string{CompressGzip, CompressBzip2, CompressXz}
}
