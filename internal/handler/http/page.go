package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/models"
)

type pageData struct {
	Mode    models.Mode
	KeyMode bool
	Version string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	mode := h.services.CryptService.Mode()

	var buf bytes.Buffer
	err := h.page.Execute(&buf, pageData{
		Mode:    mode,
		KeyMode: mode == models.ModeKey,
		Version: h.version,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.index").Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
