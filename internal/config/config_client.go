package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-crypt/models"
)

// ClientApp holds the client-side application settings.
type ClientApp struct {
	// Mode must match the server's mode; it decides which forms are shown.
	Mode models.Mode
	// DownloadDir is where downloaded files are saved.
	DownloadDir string
	// LogFile is the client log file path.
	LogFile string
	// LogLevel filters client log output.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout bounds every exchange with the server.
	RequestTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Mode:        models.Mode(cfg.App.Mode),
			DownloadDir: cfg.App.DownloadDir,
			LogFile:     cfg.App.LogFile,
			LogLevel:    cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
