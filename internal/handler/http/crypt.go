package http

import (
	"net/http"

	"github.com/MKhiriev/go-file-crypt/internal/service"
	"github.com/MKhiriev/go-file-crypt/models"
)

func (h *Handler) generateKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.services.CryptService.GenerateKey(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.GenerateKeyResponse{Envelope: okEnvelope, GeneratedKey: key}, http.StatusOK)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, err := formFile(r, models.FieldFile, service.ErrNoFileSelected)
	if err != nil {
		writeError(w, r, err)
		return
	}

	svc := h.services.CryptService
	result, err := svc.Encrypt(r.Context(), models.EncryptRequest{
		File:       file,
		OutputName: r.FormValue(models.FieldOutputName),
		Secret:     r.FormValue(secretField(svc.Mode())),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.EncryptResponse{Envelope: okEnvelope, EncryptResult: result}, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	svc := h.services.CryptService
	req := models.DecryptRequest{OutputName: r.FormValue(models.FieldOutputName)}

	// the metadata file is checked before the encrypted one
	if r.FormValue(models.FieldUseMetadata) == "true" {
		meta, err := formMetadata(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		req.Metadata = meta
	} else {
		req.Secret = r.FormValue(secretField(svc.Mode()))
	}

	file, err := formFile(r, models.FieldEncryptedFile, service.ErrNoEncryptedFileSelected)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req.EncryptedFile = file

	result, err := svc.Decrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.DecryptResponse{Envelope: okEnvelope, DecryptResult: result}, http.StatusOK)
}
