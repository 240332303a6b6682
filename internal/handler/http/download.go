package http

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// download sends a produced file as an attachment.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	file, err := h.services.FileService.Open(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": info.Name()}))
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
