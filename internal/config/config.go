package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configPath when set. An empty path yields Default and reads
// nothing from disk.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	if err := checkConfigPath(configPath); err != nil {
		return nil, err
	}

	absConfigPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, oops.Wrapf(err, "resolving absolute config path")
	}

	cfg := &Config{}
	k := koanf.New(".")

	if loadErr := k.Load(file.Provider(absConfigPath), toml.Parser()); loadErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absConfigPath).
			Hint("Fix TOML syntax in your config").
			Wrapf(loadErr, "loading config from %q", absConfigPath)
	}

	if unmarshalErr := k.Unmarshal("", cfg); unmarshalErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absConfigPath).
			Hint("Fix config structure to match the md-preview schema").
			Wrapf(unmarshalErr, "decoding config from %q", absConfigPath)
	}

	cfg.ConfigPath = absConfigPath

	if valErr := cfg.Validate(); valErr != nil {
		return nil, valErr
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func checkConfigPath(configPath string) error {
	info, err := os.Stat(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return oops.
				Code("CONFIG_NOT_FOUND").
				With("path", configPath).
				Hint("Create the file or pass a valid --config path").
				Errorf("config file %q does not exist", configPath)
		}

		return oops.Wrapf(err, "checking config file %q", configPath)
	}

	if info.IsDir() {
		return oops.
			Code("CONFIG_INVALID").
			With("path", configPath).
			Hint("Pass the path of a TOML file, not a directory").
			Errorf("config path %q is a directory", configPath)
	}

	return nil
}
