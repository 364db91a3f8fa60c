// Package config loads application settings from a yaml file with APP_
// environment overrides.
package config

import (
	"github.com/openroster/roster-stats-service/internal/logger"
)

// Service identifies the running binary in logs.
type Service struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type Config struct {
	Service Service             `mapstructure:"service"`
	Logger  logger.LoggerConfig `mapstructure:"logger"`
}
