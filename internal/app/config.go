package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Notebook   string // backend name or alias
	ConfigPath string // optional launcher defaults file

	LogFormat string
	LogLevel  string
	WaitReady bool

	// BackendArgs are the trailing tokens handed to the selected backend.
	BackendArgs []string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Notebook == "" {
		return nil, errors.New("Notebook is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
