package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths      []string // maze text files
	ConfigPath string   // optional HCL job file

	LogFormat   string
	LogLevel    string
	Workers     int    // 0 defers to the job file, then to the CPU count
	StartFacing string // overrides every other facing source when set
	Render      bool
	ServeAddr   string // non-empty switches to HTTP mode
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 && cfg.ConfigPath == "" && cfg.ServeAddr == "" {
		return nil, errors.New("at least one maze file, a job file or a serve address is required")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	return &cfg, nil
}
