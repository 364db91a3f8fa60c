package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the config file at path and applies APP_-prefixed environment
// overrides (APP_LOGGER_LEVEL, APP_SERVICE_NAME, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if config.Service.Name == "" {
		config.Service.Name = "roster-stats-service"
	}
	if config.Logger.ServiceName == "" {
		config.Logger.ServiceName = config.Service.Name
	}
	if config.Logger.ServiceVersion == "" {
		config.Logger.ServiceVersion = config.Service.Version
	}
	return &config, nil
}
