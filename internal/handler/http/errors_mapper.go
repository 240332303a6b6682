package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-file-crypt/internal/crypto"
	"github.com/MKhiriev/go-file-crypt/internal/service"
	"github.com/MKhiriev/go-file-crypt/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoFileSelected:           http.StatusBadRequest,
	service.ErrNoMetadataFileSelected:   http.StatusBadRequest,
	service.ErrNoEncryptedFileSelected:  http.StatusBadRequest,
	service.ErrKeyRequired:              http.StatusBadRequest,
	service.ErrPasswordRequired:         http.StatusBadRequest,
	service.ErrMetadataHasNoKey:         http.StatusBadRequest,
	service.ErrMetadataHasNoPassword:    http.StatusBadRequest,
	service.ErrInvalidMetadata:          http.StatusBadRequest,
	service.ErrDecryptionFailed:         http.StatusBadRequest,
	service.ErrDecryptionFailedPassword: http.StatusBadRequest,
	service.ErrFileNotFound:             http.StatusNotFound,
	service.ErrFileTooLarge:             http.StatusRequestEntityTooLarge,
	service.ErrKeyGenerationUnsupported: http.StatusNotFound,
	ErrInvalidForm:                      http.StatusBadRequest,

	crypto.ErrInvalidKeyFormat: http.StatusBadRequest,
	crypto.ErrInvalidKeyLength: http.StatusBadRequest,

	store.ErrInvalidFileName: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text sent to the client in the error envelope.
// Only mapped errors are exposed, the rest become a generic message.
func publicMessage(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return errInternal.Error()
}
