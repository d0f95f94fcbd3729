package config

import (
	"gopkg.in/yaml.v3"

	"github.com/avalluri/wic/internal/errors"
)

// Marshal renders a configuration as YAML, the same format the config files
// use. Used by 'wic config show' to print the effective configuration.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return out, nil
}
