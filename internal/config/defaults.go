package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/avalluri/wic/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			// Command: the standard orchestrator; must be on PATH when a
			// build is actually requested.
			Command: constants.DefaultBuildCommand,

			// VarsDir: empty derives $BUILDDIR/tmp/deploy/images at startup,
			// matching where the build system drops per-image .env files.
			VarsDir: "",

			// Timeout: none. Image builds can legitimately run for hours.
			Timeout: 0,
		},
		Engine: EngineConfig{
			Command: constants.DefaultEngineCommand,

			// OutDir: the current directory, the least surprising place for
			// a command-line tool to drop its output.
			OutDir: ".",
		},
		Canned: CannedConfig{
			// Dirs: populated from the build environment by DefaultCannedDirs.
			Dirs: nil,
		},
	}
}

// setDefaults registers default values on a viper instance so they survive
// layered merging.
func setDefaults(v *viper.Viper) {
	v.SetDefault("build.command", constants.DefaultBuildCommand)
	v.SetDefault("build.vars_dir", "")
	v.SetDefault("build.timeout", 0)
	v.SetDefault("engine.command", constants.DefaultEngineCommand)
	v.SetDefault("engine.outdir", ".")
	v.SetDefault("canned.dirs", []string{})
}

// DefaultVarsDir derives the build-variable directory from the build
// environment. Empty when no build directory is exported.
func DefaultVarsDir() string {
	buildDir := os.Getenv(constants.BuildDirEnvVar)
	if buildDir == "" {
		return ""
	}
	return filepath.Join(buildDir, "tmp", "deploy", "images")
}

// DefaultCannedDirs derives the canned descriptor search path: the build
// directory's canned-wks collection when available, then the global config
// directory's canned-wks.
func DefaultCannedDirs() []string {
	var dirs []string
	if buildDir := os.Getenv(constants.BuildDirEnvVar); buildDir != "" {
		dirs = append(dirs, filepath.Join(buildDir, "canned-wks"))
	}
	if global, err := GlobalConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(global, "canned-wks"))
	}
	return dirs
}
