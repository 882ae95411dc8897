package config

import (
	"time"

	"beauty-trends/pkg/logger"
)

type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Export   ExportConfig   `mapstructure:"export"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   logger.Config  `mapstructure:"logger"`
}

type ProviderConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	APIKey    string        `mapstructure:"api_key"`
	Timeframe string        `mapstructure:"timeframe"`
	Geo       string        `mapstructure:"geo"`
	Language  string        `mapstructure:"language"`
	TZ        int           `mapstructure:"tz"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Pause     time.Duration `mapstructure:"pause"`
}

type AnalysisConfig struct {
	Keywords     []string `mapstructure:"keywords"`
	SearchVolume int      `mapstructure:"search_volume"`
	TopN         int      `mapstructure:"top_n"`
}

type ExportConfig struct {
	CSVPath  string `mapstructure:"csv_path"`
	JSONPath string `mapstructure:"json_path"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	GetConfig() *Config
}
