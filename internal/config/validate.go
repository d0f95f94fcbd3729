package config

import (
	"github.com/avalluri/wic/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - build command must not be empty
//   - build timeout must not be negative
//   - engine command must not be empty
//   - engine outdir must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateBuildConfig(&cfg.Build); err != nil {
		return err
	}
	return validateEngineConfig(&cfg.Engine)
}

// validateBuildConfig checks build-orchestrator configuration values.
func validateBuildConfig(cfg *BuildConfig) error {
	if cfg.Command == "" {
		return errors.Wrap(errors.ErrConfigInvalidBuild, "build.command must not be empty")
	}
	if cfg.Timeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidBuild,
			"build.timeout must not be negative, got %s", cfg.Timeout)
	}
	return nil
}

// validateEngineConfig checks image-engine configuration values.
func validateEngineConfig(cfg *EngineConfig) error {
	if cfg.Command == "" {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "engine.command must not be empty")
	}
	if cfg.OutDir == "" {
		return errors.Wrap(errors.ErrConfigInvalidEngine, "engine.outdir must not be empty")
	}
	return nil
}
