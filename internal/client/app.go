package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/adapter"
	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/tui"
	"github.com/MKhiriev/go-file-crypt/models"
)

// probeTimeout bounds the server info request made at startup.
const probeTimeout = 5 * time.Second

type App struct {
	adapter   adapter.ServerAdapter
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	// newUI builds the front end once the server mode is known.
	newUI func(opts tui.Options) (UI, error)

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || cfg == nil {
		return nil, ErrNotConfigured
	}

	return &App{
		adapter:   serverAdapter,
		cfg:       cfg,
		buildInfo: buildInfo,
		newUI: func(opts tui.Options) (UI, error) {
			return tui.New(serverAdapter, opts, logger)
		},
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	info := a.serverInfo(ctx)

	ui, err := a.newUI(tui.Options{
		Mode:           info.Mode,
		DownloadDir:    a.cfg.App.DownloadDir,
		RequestTimeout: a.cfg.Adapter.RequestTimeout,
		BuildInfo:      a.buildInfo,
		ServerVersion:  info.Version,
	})
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	return ui.Run(ctx)
}

// serverInfo asks the server which variant it runs. The configured mode is
// used when the server cannot be reached or reports an unknown mode, so the
// client still starts against a server that is down.
func (a *App) serverInfo(ctx context.Context) models.ServerInfo {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	info, err := a.adapter.ServerInfo(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("mode", a.cfg.App.Mode.String()).Msg("server info unavailable, using configured mode")
		return models.ServerInfo{Mode: a.cfg.App.Mode}
	}

	if !info.Mode.Valid() {
		a.logger.Warn().Str("mode", info.Mode.String()).Msg("server reported an unknown mode, using configured mode")
		info.Mode = a.cfg.App.Mode
	}
	if info.Mode != a.cfg.App.Mode {
		a.logger.Info().
			Str("configured", a.cfg.App.Mode.String()).
			Str("server", info.Mode.String()).
			Msg("using the server mode")
	}

	return info
}
