package resolve

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// ArtifactSet is the validated output of a resolution. Every directory path
// it carries refers to an existing directory at the time of resolution; the
// serialized rootfs args may be empty only when no rootfs mapping was
// supplied and the mode tolerates it.
//
// The set is owned by the resolver until handed to the image engine, which
// takes ownership for the remainder of the run.
type ArtifactSet struct {
	// Descriptor is the image description (.wks) file path.
	Descriptor string

	// Rootfs is the resolved rootfs mapping.
	Rootfs RootfsMap

	// RootfsArgs is the serialized rootfs mapping (KEY=PATH entries joined
	// by single spaces, insertion order).
	RootfsArgs string

	// BootimgDir is the bootloader artifact directory.
	BootimgDir string

	// KernelDir is the kernel artifact directory.
	KernelDir string

	// NativeSysroot is the native toolchain sysroot directory.
	NativeSysroot string
}

// Resolver runs the artifact-resolution state machine. It is single-threaded
// and synchronous: every collaborator call blocks until it returns, and one
// resolution is expected per process invocation.
type Resolver struct {
	env        BuildEnv
	cannedDirs []string
	log        zerolog.Logger
}

// New creates a resolver using the given build-environment capability and
// canned image description search directories.
func New(env BuildEnv, cannedDirs []string, log zerolog.Logger) *Resolver {
	return &Resolver{
		env:        env,
		cannedDirs: cannedDirs,
		log:        log,
	}
}

// Resolve classifies the request and produces a validated artifact set.
// Any failure aborts the whole resolution; no partial sets are returned.
//
// A vars-dir override on the request is applied to the build environment
// once, before any lookup runs, so every variable read of this resolution
// sees the same directory.
func (r *Resolver) Resolve(ctx context.Context, req *Request) (*ArtifactSet, error) {
	if req != nil && req.VarsDir != "" {
		if env, ok := r.env.(interface{ ConfigureVarsDir(string) }); ok {
			env.ConfigureVarsDir(req.VarsDir)
		}
	}

	mode, err := Classify(req)
	if err != nil {
		return nil, err
	}
	r.log.Debug().Stringer("mode", mode).Str("descriptor", req.Descriptor).Msg("resolving artifacts")

	if mode == ModeByImageName {
		return r.byImageName(ctx, req)
	}
	return r.byExplicitPaths(ctx, req)
}

// byImageName resolves artifact paths by querying the build-variable lookup
// for the request's image name. Each step is fatal on failure and runs in a
// fixed order: optional rootfs build, variable lookups, native sysroot
// fallback, environment check, descriptor resolution, existence validation.
func (r *Resolver) byImageName(ctx context.Context, req *Request) (*ArtifactSet, error) {
	image := req.ImageName

	if req.BuildRootfs {
		job := NewImageJob(image, req.Debug)
		r.log.Info().Str("job_id", job.ID).Str("target", job.Target).Msg("building rootfs")
		if err := r.env.RunBuild(ctx, job); err != nil {
			if stderrors.Is(err, errors.ErrBuildToolUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("build of %q failed: %v: %w", image, err, errors.ErrRootfsBuildFailed)
		}
	}

	rootfsDir, err := r.lookup(ctx, constants.VarImageRootfs, image)
	if err != nil {
		return nil, err
	}
	kernelDir, err := r.lookup(ctx, constants.VarDeployDir, image)
	if err != nil {
		return nil, err
	}
	nativeSysroot, err := r.resolveNativeSysroot(ctx, req)
	if err != nil {
		return nil, err
	}

	if !req.SkipBuildCheck {
		if !r.env.VerifyEnvironment(ctx) {
			return nil, errors.ErrEnvironmentCheckFailed
		}
	}

	descriptor, err := r.resolveDescriptor(ctx, req)
	if err != nil {
		return nil, err
	}

	rootfs := req.Rootfs.Clone()
	if _, ok := rootfs.Default(); !ok && rootfsDir != "" {
		rootfs.Set(constants.DefaultRootfsKey, rootfsDir)
	}
	if dir, ok := rootfs.Default(); ok {
		rootfsDir = dir
	}

	// First missing directory wins, checked in fixed order. This is
	// deliberately asymmetric with Classify's enumerate-all policy.
	checks := []struct {
		kind string
		path string
	}{
		{"rootfs", rootfsDir},
		{"kernel", kernelDir},
		{"native sysroot", nativeSysroot},
	}
	for _, c := range checks {
		if !isDir(c.path) {
			return nil, errors.Wrapf(errors.ErrArtifactDirectoryMissing, "%s %q", c.kind, c.path)
		}
	}

	set := &ArtifactSet{
		Descriptor:    descriptor,
		Rootfs:        rootfs,
		RootfsArgs:    rootfs.Args(),
		BootimgDir:    req.BootimgDir,
		KernelDir:     kernelDir,
		NativeSysroot: nativeSysroot,
	}
	r.logResolved(set)
	return set, nil
}

// byExplicitPaths validates the request's explicit artifact directories.
// All four fields are present (guaranteed by Classify); each check is
// independent and the first failure in the listed order is reported.
// No build triggering occurs: explicit paths are assumed final.
func (r *Resolver) byExplicitPaths(ctx context.Context, req *Request) (*ArtifactSet, error) {
	if dir, ok := req.Rootfs.Default(); ok && !isDir(dir) {
		return nil, errors.Wrapf(errors.ErrRootfsDirectoryMissing, "%q", dir)
	}
	if !isDir(req.BootimgDir) {
		return nil, errors.Wrapf(errors.ErrBootimgDirectoryMissing, "%q", req.BootimgDir)
	}
	if !isDir(req.KernelDir) {
		return nil, errors.Wrapf(errors.ErrKernelDirectoryMissing, "%q", req.KernelDir)
	}
	if !isDir(req.NativeSysroot) {
		return nil, errors.Wrapf(errors.ErrNativeSysrootMissing, "%q", req.NativeSysroot)
	}

	descriptor, err := r.resolveDescriptor(ctx, req)
	if err != nil {
		return nil, err
	}

	rootfs := req.Rootfs.Clone()
	set := &ArtifactSet{
		Descriptor:    descriptor,
		Rootfs:        rootfs,
		RootfsArgs:    rootfs.Args(),
		BootimgDir:    req.BootimgDir,
		KernelDir:     req.KernelDir,
		NativeSysroot: req.NativeSysroot,
	}
	r.logResolved(set)
	return set, nil
}

// resolveNativeSysroot produces a native sysroot directory usable by the
// image engine. An explicit existing path is used unchanged; otherwise the
// native toolchain package is built and the resulting sysroot looked up.
// The build fallback self-heals a missing shared dependency, but only as a
// fallback, never unconditionally.
func (r *Resolver) resolveNativeSysroot(ctx context.Context, req *Request) (string, error) {
	if req.NativeSysroot != "" && isDir(req.NativeSysroot) {
		return req.NativeSysroot, nil
	}

	job := NewNativeToolsJob(req.Debug)
	r.log.Info().Str("job_id", job.ID).Str("target", job.Target).Msg("building native tools")
	if err := r.env.RunBuild(ctx, job); err != nil {
		if stderrors.Is(err, errors.ErrBuildToolUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("build of %q failed: %v: %w", job.Target, err, errors.ErrNativeSysrootBuildFailed)
	}

	sysroot, ok, err := r.env.LookupVariable(ctx, constants.VarNativeSysroot, constants.NativeToolsTarget)
	if err != nil {
		return "", errors.Wrap(err, "looking up "+constants.VarNativeSysroot)
	}
	if !ok || sysroot == "" {
		return "", errors.ErrNativeSysrootUnavailable
	}
	return sysroot, nil
}

// lookup queries a build variable scoped to an image, treating an unset
// variable as an empty path. Existence validation reports it later.
func (r *Resolver) lookup(ctx context.Context, name, image string) (string, error) {
	value, ok, err := r.env.LookupVariable(ctx, name, image)
	if err != nil {
		return "", errors.Wrap(err, "looking up "+name)
	}
	if !ok {
		r.log.Debug().Str("variable", name).Str("image", image).Msg("build variable unset")
		return "", nil
	}
	return value, nil
}

func (r *Resolver) logResolved(set *ArtifactSet) {
	r.log.Debug().
		Str("descriptor", set.Descriptor).
		Str("rootfs", set.RootfsArgs).
		Str("bootimg", set.BootimgDir).
		Str("kernel", set.KernelDir).
		Str("native_sysroot", set.NativeSysroot).
		Msg("artifacts resolved")
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
