// Package engine defines the contract with the image-construction engine and
// an exec-based dispatcher for it.
//
// The engine itself (partitioning, filesystem creation, compression, block-map
// generation) is an external collaborator: this package only hands a fully
// validated artifact set across the boundary.
package engine

import (
	"context"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// Options carries the behavior flags forwarded to the engine.
type Options struct {
	// OutDir is the directory the image is created in.
	OutDir string

	// Compressor optionally names the compression applied to the final
	// image: gzip, bzip2 or xz. Empty means no compression.
	Compressor string

	// GenerateBmap requests block-map generation alongside the image.
	GenerateBmap bool

	// Debug enables verbose engine output.
	Debug bool
}

// Input is everything the engine needs to build one image.
type Input struct {
	// Descriptor is the image description (.wks) file path.
	Descriptor string

	// RootfsArgs is the serialized rootfs mapping (KEY=PATH entries).
	RootfsArgs string

	// BootimgDir is the bootloader artifact directory (may be empty in
	// lookup-driven mode).
	BootimgDir string

	// KernelDir is the kernel artifact directory.
	KernelDir string

	// NativeSysroot is the native toolchain sysroot directory.
	NativeSysroot string

	// Options are the forwarded behavior flags.
	Options Options
}

// Builder constructs a disk image from a validated artifact set. The call is
// opaque to the resolver core; its success/failure semantics belong to the
// engine.
type Builder interface {
	Build(ctx context.Context, in Input) error
}

// ValidateCompressor checks a compression method name. The empty string is
// valid and means no compression.
func ValidateCompressor(name string) error {
	if name == "" {
		return nil
	}
	for _, valid := range constants.Compressors() {
		if name == valid {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInvalidCompressor, "%q is not one of %v", name, constants.Compressors())
}
