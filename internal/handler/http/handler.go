package http

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/service"
	"github.com/MKhiriev/go-file-crypt/web"
)

// multipartMemory is the part of a multipart body kept in memory before
// net/http spills it to temporary files.
const multipartMemory = 8 << 20

type Handler struct {
	services *service.Services

	page   *template.Template
	static http.Handler

	version        string
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	page, err := template.ParseFS(web.FS, web.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}

	assets, err := fs.Sub(web.FS, web.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("error opening static assets: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		page:           page,
		static:         http.StripPrefix("/static/", http.FileServer(http.FS(assets))),
		version:        cfg.App.Version,
		maxUploadSize:  cfg.App.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}
