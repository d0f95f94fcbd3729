package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/avalluri/wic/internal/errors"
)

// newViperInstance creates a new Viper instance with standard wic
// configuration: environment variable prefix (WIC_), key replacer, and
// defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("WIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (WIC_* prefix)
//  2. Project config (.wic/config.yaml)
//  3. Global config (~/.wic/config.yaml)
//  4. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
//
// Environment-derived defaults (vars dir, canned dirs) are filled in after
// merging so explicit configuration always wins.
func Load() (*Config, error) {
	v := newViperInstance()

	// Global config provides user-wide defaults that can be overridden
	// per-project.
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Project config allows per-build-tree customization.
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Build.VarsDir == "" {
		cfg.Build.VarsDir = DefaultVarsDir()
	}
	if len(cfg.Canned.Dirs) == 0 {
		cfg.Canned.Dirs = DefaultCannedDirs()
	}

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file (~/.wic/config.yaml).
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.wic/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(":"),
		),
	)
}
