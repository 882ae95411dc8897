package api

import (
	"time"

	"github.com/valyala/fasthttp"

	"beauty-trends/pkg/logger"
)

// ConnectionConfig holds the fasthttp client settings
type ConnectionConfig struct {
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	RequestTimeout      time.Duration
}

// DefaultConnectionConfig suits one sequential request at a time
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxConnsPerHost:     4,
		MaxIdleConnDuration: 90 * time.Second,
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        10 * time.Second,
		RequestTimeout:      30 * time.Second,
	}
}

// ConnectionManager owns the fasthttp client used by the provider
type ConnectionManager struct {
	config ConnectionConfig
	client *fasthttp.Client
	log    *logger.Logger
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultConnectionConfig().RequestTimeout
	}

	client := &fasthttp.Client{
		Name:                "beauty-trends/1.0",
		MaxConnsPerHost:     config.MaxConnsPerHost,
		MaxIdleConnDuration: config.MaxIdleConnDuration,
		ReadTimeout:         config.ReadTimeout,
		WriteTimeout:        config.WriteTimeout,
	}

	return &ConnectionManager{
		config: config,
		client: client,
		log:    logger.GetLogger().WithField("component", "connection_manager"),
	}
}

func (cm *ConnectionManager) GetFastHTTPClient() *fasthttp.Client {
	return cm.client
}

func (cm *ConnectionManager) RequestTimeout() time.Duration {
	return cm.config.RequestTimeout
}

// Close drops idle connections
func (cm *ConnectionManager) Close() {
	cm.log.Debug("Closing idle provider connections")
	cm.client.CloseIdleConnections()
}
