package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s server address used by the client
//	-mode crypt mode: key or password
//	-u upload directory
//	-d artifact registry DSN (SQLite path or postgres:// URL)
//	-c/-config JSON or YAML config file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size maximum request body size in bytes
//	-cleanup-interval artifact cleanup interval
//	-file-ttl lifetime of produced files
//	-download-dir client download directory
//	-log-level log level
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		adapterAddress  string
		mode            string
		uploadDir       string
		databaseDSN     string
		configPath      string
		requestTimeout  time.Duration
		maxUploadSize   int64
		cleanupInterval time.Duration
		fileTTL         time.Duration
		downloadDir     string
		logLevel        string
		logFile         string
	)

	fs := flag.NewFlagSet("file-crypt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Server address used by the client")
	fs.StringVar(&mode, "mode", "", "Crypt mode: key or password")
	fs.StringVar(&uploadDir, "u", "", "Upload directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum request body size in bytes")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Artifact cleanup interval")
	fs.DurationVar(&fileTTL, "file-ttl", 0, "Lifetime of produced files")
	fs.StringVar(&downloadDir, "download-dir", "", "Client download directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Mode:          mode,
			MaxUploadSize: maxUploadSize,
			LogLevel:      logLevel,
			DownloadDir:   downloadDir,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{UploadDir: uploadDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
			FileTTL:         fileTTL,
		},
		ConfigFilePath: configPath,
	}, nil
}
