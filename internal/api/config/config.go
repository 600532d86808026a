package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	Cfg = &cfg

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.YouTube.SearchPageSize <= 0 || cfg.YouTube.SearchPageSize > 50 {
		cfg.YouTube.SearchPageSize = 50
	}
	if cfg.YouTube.TimeoutSeconds <= 0 {
		cfg.YouTube.TimeoutSeconds = 20
	}
	if cfg.YouTube.QueryIntervalMs <= 0 {
		cfg.YouTube.QueryIntervalMs = 500
	}
	if cfg.Jobs.RefreshBatchSize <= 0 || cfg.Jobs.RefreshBatchSize > 50 {
		cfg.Jobs.RefreshBatchSize = 50
	}
	if cfg.Jobs.RefreshSchedule == "" {
		cfg.Jobs.RefreshSchedule = "0 0 */6 * * *"
	}
	if cfg.Jobs.DiscoverySchedule == "" {
		cfg.Jobs.DiscoverySchedule = "@daily"
	}
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
}
