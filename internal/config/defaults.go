package config

import (
	"time"

	"github.com/MKhiriev/go-file-crypt/models"
)

// Default values used when no source sets a field.
const (
	DefaultHTTPAddress     = "localhost:5000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMaxUploadSize   = 16 << 20
	DefaultUploadDir       = "uploads"
	DefaultDSN             = "uploads/artifacts.db"
	DefaultCleanupInterval = 10 * time.Minute
	DefaultFileTTL         = 24 * time.Hour
	DefaultLogLevel        = "debug"
	DefaultDownloadDir     = "."
	DefaultVersion         = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:          models.ModeKey.String(),
			Version:       DefaultVersion,
			MaxUploadSize: DefaultMaxUploadSize,
			LogLevel:      DefaultLogLevel,
			DownloadDir:   DefaultDownloadDir,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{UploadDir: DefaultUploadDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			CleanupInterval: DefaultCleanupInterval,
			FileTTL:         DefaultFileTTL,
		},
	}
}
