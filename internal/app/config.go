package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // a .xcconfig file, or a directory of them
	OutputPath string // optional write-back target for the flattened result
	Overwrite  bool
	Watch      bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Overwrite && cfg.OutputPath == "" {
		return nil, errors.New("-overwrite is only meaningful together with -o")
	}

	return &cfg, nil
}
