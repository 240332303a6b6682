package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/utils"
	"github.com/MKhiriev/go-file-crypt/models"
)

var okEnvelope = models.Envelope{Success: true}

func writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}

// writeError answers with {"success":false,"error":...} and the status
// mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("uri", r.RequestURI).Msg("request rejected")
	}

	writeJSON(w, r, models.Envelope{Success: false, Error: publicMessage(err)}, status)
}
