// Package resolve implements the artifact-resolution and validation state
// machine behind 'wic create'.
//
// Given a partial, possibly ambiguous set of user-supplied locations and
// flags, the resolver determines a single consistent, existing-on-disk set of
// (rootfs, bootimg, kernel, native sysroot) directories, optionally triggering
// a dependent build to produce missing artifacts, and failing fast and
// specifically when resolution cannot succeed.
package resolve

import (
	"strings"

	"github.com/avalluri/wic/internal/errors"
)

// Request is the immutable input to a resolution. It is owned by the command
// dispatcher and passed by read-only reference into the resolver.
type Request struct {
	// Descriptor is the positional argument: an image description (.wks)
	// path or the name of a canned image.
	Descriptor string

	// ImageName selects lookup-driven resolution when non-empty.
	ImageName string

	// Rootfs maps named rootfs sources to directories.
	Rootfs RootfsMap

	// BootimgDir is the explicit bootloader artifact directory.
	BootimgDir string

	// KernelDir is the explicit kernel artifact directory.
	KernelDir string

	// NativeSysroot is the explicit native toolchain sysroot directory.
	NativeSysroot string

	// BuildRootfs requests a rootfs build for ImageName before resolution.
	BuildRootfs bool

	// SkipBuildCheck skips the build-environment verification predicate.
	SkipBuildCheck bool

	// Debug is forwarded to triggered build jobs and the image engine.
	Debug bool

	// VarsDir overrides the directory searched for build-variable .env
	// files. When set, the resolver reconfigures the build environment with
	// it before the first lookup.
	VarsDir string
}

// Mode tags how a request's artifact paths are resolved. Exactly one mode is
// active per request; Classify never yields both or neither.
type Mode int

// Resolution modes.
const (
	// ModeByImageName looks artifact paths up by image name.
	ModeByImageName Mode = iota

	// ModeByExplicitPaths takes all four artifact paths directly from the request.
	ModeByExplicitPaths
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeByImageName:
		return "by-image-name"
	case ModeByExplicitPaths:
		return "by-explicit-paths"
	default:
		return "unknown"
	}
}

// Classify determines the resolution mode for a request. It is a pure
// function of the request.
//
// An image name selects ModeByImageName. Otherwise the request must carry all
// four explicit artifact locations (rootfs mapping with at least the default
// key, bootimg, kernel, native sysroot); if any subset is present but not
// all, the returned error wraps ErrMissingArtifactSpec and names every
// missing field, not just the first.
func Classify(req *Request) (Mode, error) {
	if req.ImageName != "" {
		return ModeByImageName, nil
	}

	var missing []string
	if _, ok := req.Rootfs.Default(); !ok {
		missing = append(missing, "rootfs dir (-r)")
	}
	if req.BootimgDir == "" {
		missing = append(missing, "bootimg dir (-b)")
	}
	if req.KernelDir == "" {
		missing = append(missing, "kernel dir (-k)")
	}
	if req.NativeSysroot == "" {
		missing = append(missing, "native sysroot (-n)")
	}
	if len(missing) > 0 {
		return ModeByExplicitPaths, errors.Wrapf(errors.ErrMissingArtifactSpec,
			"no image name given and missing: %s", strings.Join(missing, ", "))
	}

	return ModeByExplicitPaths, nil
}
