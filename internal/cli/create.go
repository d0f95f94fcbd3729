// Package cli provides the command-line interface for wic.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avalluri/wic/internal/bitbake"
	"github.com/avalluri/wic/internal/config"
	"github.com/avalluri/wic/internal/engine"
	"github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/resolve"
	"github.com/avalluri/wic/internal/signal"
	"github.com/avalluri/wic/internal/tui"
)

// createFlags holds the flags for the create command.
type createFlags struct {
	imageName      string
	rootfsDirs     []string
	bootimgDir     string
	kernelDir      string
	nativeSysroot  string
	outDir         string
	compressor     string
	bmap           bool
	buildRootfs    bool
	skipBuildCheck bool
	varsDir        string
	debug          bool
}

// AddCreateCommand adds the create command to the root command.
func AddCreateCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <descriptor>",
		Short: "Create a bootable disk image",
		Long: `Create a partitioned, bootable disk image from build artifacts.

The descriptor is either a path to an image description (.wks) file or the
name of a canned image (see 'wic list images').

Artifact directories are looked up from the build system when an image name
is given with -e, or taken directly from -r, -b, -k and -n. The two forms
are exclusive per artifact: explicit paths override looked-up ones.`,
		Example: `  wic create mkefidisk -e core-image-minimal
  wic create ./my-image.wks -r ./rootfs -b ./bootimg -k ./kernel -n ./sysroot
  wic create directdisk -e core-image-minimal -f -c gzip -m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], flags, global)
		},
	}

	cmd.Flags().StringVarP(&flags.imageName, "image-name", "e", "",
		"name of the built image to look artifact locations up for")
	cmd.Flags().StringArrayVarP(&flags.rootfsDirs, "rootfs-dir", "r", nil,
		"rootfs directory, as DIR or KEY=DIR (repeatable)")
	cmd.Flags().StringVarP(&flags.bootimgDir, "bootimg-dir", "b", "",
		"directory with bootloader artifacts")
	cmd.Flags().StringVarP(&flags.kernelDir, "kernel-dir", "k", "",
		"directory with kernel artifacts")
	cmd.Flags().StringVarP(&flags.nativeSysroot, "native-sysroot", "n", "",
		"native toolchain sysroot directory")
	cmd.Flags().StringVarP(&flags.outDir, "outdir", "o", "",
		"output directory for the created image")
	cmd.Flags().StringVarP(&flags.compressor, "compress-with", "c", "",
		"compress the final image with gzip, bzip2 or xz")
	cmd.Flags().BoolVarP(&flags.bmap, "bmap", "m", false,
		"generate a block map alongside the image")
	cmd.Flags().BoolVarP(&flags.buildRootfs, "build-rootfs", "f", false,
		"build the rootfs for the image named with -e before resolving")
	cmd.Flags().BoolVarP(&flags.skipBuildCheck, "skip-build-check", "s", false,
		"skip the build environment check")
	cmd.Flags().StringVarP(&flags.varsDir, "vars-dir", "v", "",
		"directory with per-image build-variable .env files")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "D", false,
		"forward debug output from builds and the image engine")

	root.AddCommand(cmd)
}

// runCreate resolves the artifact set and dispatches it to the image engine.
// A resolution failure never reaches the engine.
func runCreate(cmd *cobra.Command, descriptor string, flags *createFlags, global *GlobalFlags) error {
	tui.CheckNoColor()
	logger := GetLogger()
	out := tui.NewOutput(cmd.OutOrStdout(), global.Format)

	if err := engine.ValidateCompressor(flags.compressor); err != nil {
		out.Error(actionableFor(err))
		return err
	}

	rootfs, err := parseRootfsFlags(flags.rootfsDirs)
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		out.Error(actionableFor(err))
		return err
	}
	if err := config.Validate(cfg); err != nil {
		out.Error(actionableFor(err))
		return err
	}

	outDir := flags.outDir
	if outDir == "" {
		outDir = cfg.Engine.OutDir
	}

	req := &resolve.Request{
		Descriptor:     descriptor,
		ImageName:      flags.imageName,
		Rootfs:         rootfs,
		BootimgDir:     flags.bootimgDir,
		KernelDir:      flags.kernelDir,
		NativeSysroot:  flags.nativeSysroot,
		BuildRootfs:    flags.buildRootfs,
		SkipBuildCheck: flags.skipBuildCheck,
		Debug:          flags.debug,
		VarsDir:        flags.varsDir,
	}

	handler := signal.NewHandler(cmd.Context())
	defer handler.Stop()
	ctx := handler.Context()

	// The client starts from the configured vars dir; a -v override on the
	// request is applied by the resolver before the first lookup.
	env := bitbake.NewClient(cfg.Build.Command, cfg.Build.VarsDir, logger).
		WithTimeout(cfg.Build.Timeout)
	resolver := resolve.New(env, cfg.Canned.Dirs, logger)

	set, err := resolver.Resolve(ctx, req)
	if err != nil {
		reportFailure(out, handler.Interrupted(), err)
		return err
	}

	builder := engine.NewExecBuilder(cfg.Engine.Command, logger)
	in := engine.Input{
		Descriptor:    set.Descriptor,
		RootfsArgs:    set.RootfsArgs,
		BootimgDir:    set.BootimgDir,
		KernelDir:     set.KernelDir,
		NativeSysroot: set.NativeSysroot,
		Options: engine.Options{
			OutDir:       outDir,
			Compressor:   flags.compressor,
			GenerateBmap: flags.bmap,
			Debug:        flags.debug,
		},
	}
	if err := builder.Build(ctx, in); err != nil {
		reportFailure(out, handler.Interrupted(), err)
		return err
	}

	out.Success(fmt.Sprintf("image created in %s", outDir))
	if global.Format == OutputJSON {
		return out.JSON(map[string]string{
			"descriptor":     set.Descriptor,
			"rootfs_args":    set.RootfsArgs,
			"bootimg_dir":    set.BootimgDir,
			"kernel_dir":     set.KernelDir,
			"native_sysroot": set.NativeSysroot,
			"outdir":         outDir,
		})
	}
	return nil
}

// parseRootfsFlags builds the rootfs mapping from repeated -r values.
// Duplicate keys are rejected; later values never silently replace earlier
// ones.
func parseRootfsFlags(values []string) (resolve.RootfsMap, error) {
	var rootfs resolve.RootfsMap
	for _, value := range values {
		key, dir, err := resolve.ParseRootfsEntry(value)
		if err != nil {
			return resolve.RootfsMap{}, err
		}
		if _, exists := rootfs.Get(key); exists {
			return resolve.RootfsMap{}, errors.Wrapf(errors.ErrDuplicateRootfsKey, "%q", key)
		}
		rootfs.Set(key, filepath.Clean(dir))
	}
	return rootfs, nil
}

// reportFailure prints a resolution or engine failure. A pending interrupt is
// noted first so the user can tell an aborted run from a genuine failure, and
// the log file is pointed at for the full trace.
func reportFailure(out tui.Output, interrupted <-chan struct{}, err error) {
	select {
	case <-interrupted:
		out.Warning("interrupted, shutting down")
	default:
	}

	out.Error(actionableFor(err))

	if logPath, pathErr := LogFilePath(); pathErr == nil {
		out.Info("see " + logPath + " for details")
	}
}

// actionableFor converts an error into its user-facing form, attaching the
// suggested action when one is known. The error's own text is kept: wrap
// messages carry specifics (paths, flag names) the generic mapping lacks.
func actionableFor(err error) error {
	_, action := errors.Actionable(err)
	if action == "" {
		return err
	}
	return tui.NewActionableError(err.Error(), action)
}
