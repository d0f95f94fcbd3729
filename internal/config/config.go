// Package config provides configuration management for wic with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (WIC_* prefix)
//  2. Project config (.wic/config.yaml)
//  3. Global config (~/.wic/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/resolve or other internal packages.
package config

import "time"

// Config is the root configuration structure for wic.
type Config struct {
	// Build contains settings for the external build orchestrator.
	Build BuildConfig `yaml:"build" json:"build" mapstructure:"build"`

	// Engine contains settings for the image-construction engine.
	Engine EngineConfig `yaml:"engine" json:"engine" mapstructure:"engine"`

	// Canned contains settings for canned image description discovery.
	Canned CannedConfig `yaml:"canned" json:"canned" mapstructure:"canned"`
}

// BuildConfig contains settings for the build orchestrator and the
// build-variable lookup.
type BuildConfig struct {
	// Command is the build orchestrator executable name.
	// Default: "bitbake"
	Command string `yaml:"command" json:"command" mapstructure:"command"`

	// VarsDir is the directory searched for per-image .env variable files.
	// Empty means derive it from $BUILDDIR at startup.
	VarsDir string `yaml:"vars_dir" json:"vars_dir" mapstructure:"vars_dir"`

	// Timeout bounds a single triggered build job. Zero means no timeout;
	// any timeout belongs to the build trigger, never the resolver core.
	// Default: 0
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// EngineConfig contains settings for the image-construction engine.
type EngineConfig struct {
	// Command is the engine executable name, resolved from the native
	// sysroot's bin directories before PATH.
	// Default: "wic-assemble"
	Command string `yaml:"command" json:"command" mapstructure:"command"`

	// OutDir is the default output directory for created images.
	// Default: "."
	OutDir string `yaml:"outdir" json:"outdir" mapstructure:"outdir"`
}

// CannedConfig contains settings for canned image discovery.
type CannedConfig struct {
	// Dirs are the directories searched for canned .wks files, in order.
	Dirs []string `yaml:"dirs" json:"dirs" mapstructure:"dirs"`
}
