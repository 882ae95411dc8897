package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TRENDS"

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// Load reads configPath when given, then applies TRENDS_* environment
// overrides on top of the built-in defaults.
func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if configPath != "" {
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	if configPath != "" {
		m.viper.SetConfigFile(configPath)
	}

	m.viper.SetEnvPrefix(envPrefix)
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	setDefaults(m.viper)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider.endpoint", "")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.timeframe", "today 3m")
	v.SetDefault("provider.geo", "BR")
	v.SetDefault("provider.language", "pt-BR")
	v.SetDefault("provider.tz", 360)
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("provider.pause", time.Second)

	v.SetDefault("analysis.keywords", []string{})
	v.SetDefault("analysis.search_volume", 100)
	v.SetDefault("analysis.top_n", 5)

	v.SetDefault("export.csv_path", "analise_beleza_sp.csv")
	v.SetDefault("export.json_path", "analise_beleza_sp.json")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.time_format", "")
}

func validateConfig(config *Config) error {
	var errs []error

	if strings.TrimSpace(config.Provider.Endpoint) == "" {
		errs = append(errs, fmt.Errorf("provider.endpoint is required (env: %s_PROVIDER_ENDPOINT)", envPrefix))
	}
	if config.Provider.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("provider.timeout must be positive"))
	}
	if config.Provider.Pause < 0 {
		errs = append(errs, fmt.Errorf("provider.pause cannot be negative"))
	}
	if config.Analysis.SearchVolume <= 0 {
		errs = append(errs, fmt.Errorf("analysis.search_volume must be positive"))
	}
	if config.Analysis.TopN <= 0 {
		errs = append(errs, fmt.Errorf("analysis.top_n must be positive"))
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port: %d", config.Server.Port))
	}

	return errors.Join(errs...)
}
