// Package config handles logger setup and the TOML configuration file of the ROM builder.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the requested verbosity, debug takes precedence over quiet.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
