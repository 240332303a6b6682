package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
// Durations are written as strings ("30s") or as nanoseconds.
type StructuredFileConfig struct {
	App struct {
		Mode          string `json:"mode" yaml:"mode"`
		Version       string `json:"version" yaml:"version"`
		MaxUploadSize int64  `json:"max_upload_size" yaml:"max_upload_size"`
		LogLevel      string `json:"log_level" yaml:"log_level"`
		DownloadDir   string `json:"download_dir" yaml:"download_dir"`
		LogFile       string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Files struct {
			UploadDir string `json:"upload_dir" yaml:"upload_dir"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval" yaml:"cleanup_interval"`
		FileTTL         Duration `json:"file_ttl" yaml:"file_ttl"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile decodes a YAML file (.yaml, .yml) or a JSON file (anything else).
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Mode:          fileCfg.App.Mode,
			Version:       fileCfg.App.Version,
			MaxUploadSize: fileCfg.App.MaxUploadSize,
			LogLevel:      fileCfg.App.LogLevel,
			DownloadDir:   fileCfg.App.DownloadDir,
			LogFile:       fileCfg.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: fileCfg.Storage.DB.DSN},
			Files: Files{UploadDir: fileCfg.Storage.Files.UploadDir},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CleanupInterval: time.Duration(fileCfg.Workers.CleanupInterval),
			FileTTL:         time.Duration(fileCfg.Workers.FileTTL),
		},
	}, nil
}

// Duration is a time.Duration that decodes from "1m30s" style strings or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
