package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Artifact resolution
	// ===================
	{
		err: ErrMissingArtifactSpec,
		info: ErrorInfo{
			Message: "Not enough artifact directories were supplied for explicit-path mode.",
			Action:  "Supply -r, -b, -k and -n, or use -e to look artifacts up by image name.",
		},
	},
	{
		err: ErrImageDescriptorNotFound,
		info: ErrorInfo{
			Message: "No image description (.wks) file matches the given name.",
			Action:  "Run 'wic list images' to see available canned images, or pass a .wks path.",
		},
	},
	{
		err: ErrArtifactDirectoryMissing,
		info: ErrorInfo{
			Message: "A looked-up artifact path does not exist as a directory.",
			Action:  "Build the image first (bitbake <image>) or pass -f to trigger the build.",
		},
	},
	{
		err: ErrRootfsDirectoryMissing,
		info: ErrorInfo{
			Message: "The supplied rootfs directory does not exist.",
			Action:  "Check the -r path, or drop explicit paths and use -e <image-name>.",
		},
	},
	{
		err: ErrBootimgDirectoryMissing,
		info: ErrorInfo{
			Message: "The supplied bootimg directory does not exist.",
			Action:  "Check the -b path.",
		},
	},
	{
		err: ErrKernelDirectoryMissing,
		info: ErrorInfo{
			Message: "The supplied kernel directory does not exist.",
			Action:  "Check the -k path.",
		},
	},
	{
		err: ErrNativeSysrootMissing,
		info: ErrorInfo{
			Message: "The supplied native sysroot directory does not exist.",
			Action:  "Check the -n path.",
		},
	},
	{
		err: ErrNativeSysrootUnavailable,
		info: ErrorInfo{
			Message: "No native sysroot could be resolved, even after building the native tools.",
			Action:  "Build the native toolchain manually (bitbake wic-tools) and retry.",
		},
	},

	// ===================
	// Build trigger
	// ===================
	{
		err: ErrBuildToolUnavailable,
		info: ErrorInfo{
			Message: "The build orchestrator executable was not found on PATH.",
			Action:  "Source the build environment setup script before running wic.",
		},
	},
	{
		err: ErrRootfsBuildFailed,
		info: ErrorInfo{
			Message: "The triggered rootfs build failed.",
			Action:  "Inspect the build output, fix the failure, and rerun wic create.",
		},
	},
	{
		err: ErrNativeSysrootBuildFailed,
		info: ErrorInfo{
			Message: "Building the native toolchain package failed.",
			Action:  "Inspect the build output for wic-tools and retry.",
		},
	},
	{
		err: ErrEnvironmentCheckFailed,
		info: ErrorInfo{
			Message: "The build environment verification failed.",
			Action:  "Source the build environment setup script, or pass -s to skip the check.",
		},
	},

	// ===================
	// Image engine
	// ===================
	{
		err: ErrEngineFailed,
		info: ErrorInfo{
			Message: "The image-construction engine reported a failure.",
			Action:  "Rerun with -D and --verbose to capture the engine output.",
		},
	},
	{
		err: ErrEngineUnavailable,
		info: ErrorInfo{
			Message: "The image-construction engine executable could not be located.",
			Action:  "Ensure the native sysroot contains the engine, or set engine.command in config.",
		},
	},

	// ===================
	// Input validation
	// ===================
	{
		err: ErrInvalidRootfsEntry,
		info: ErrorInfo{
			Message: "A rootfs mapping entry is malformed.",
			Action:  "Use -r DIR or -r KEY=DIR with a non-empty key and directory.",
		},
	},
	{
		err: ErrDuplicateRootfsKey,
		info: ErrorInfo{
			Message: "The same rootfs mapping key was supplied more than once.",
			Action:  "Give each -r entry a unique key.",
		},
	},
	{
		err: ErrInvalidCompressor,
		info: ErrorInfo{
			Message: "Unknown image compression method.",
			Action:  "Use one of gzip, bzip2 or xz with -c.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --format text or --format json.",
		},
	},
	{
		err: ErrUnknownListKind,
		info: ErrorInfo{
			Message: "Unknown list topic.",
			Action:  "Run 'wic list images'.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure ~/.wic/config.yaml is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidBuild,
		info: ErrorInfo{
			Message: "Invalid build configuration.",
			Action:  "Check the 'build' section of your config for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidEngine,
		info: ErrorInfo{
			Message: "Invalid engine configuration.",
			Action:  "Check the 'engine' section of your config for invalid values.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
