package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-crypt/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := models.ServerInfo{
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
		Mode:    h.services.CryptService.Mode(),
	}

	writeJSON(w, r, models.VersionResponse{Envelope: okEnvelope, ServerInfo: info}, http.StatusOK)
}
