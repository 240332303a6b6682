package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-file-crypt/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)

	// page and assets
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.index)
		r.Get("/static/*", h.serveStatic)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/download/{filename}", h.download)

	// crypt endpoints
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		if h.services.CryptService.Mode() == models.ModeKey {
			r.Get("/generate_key", h.generateKey)
		}

		r.With(h.withBodyLimit).Post("/encrypt", h.encrypt)
		r.With(h.withBodyLimit).Post("/decrypt", h.decrypt)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
