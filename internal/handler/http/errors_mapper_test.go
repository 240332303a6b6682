package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-file-crypt/internal/crypto"
	"github.com/MKhiriev/go-file-crypt/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "no file", err: service.ErrNoFileSelected, wantStatus: http.StatusBadRequest, wantMessage: "No file selected"},
		{name: "wrapped key format", err: fmt.Errorf("%w: %w", crypto.ErrInvalidKeyFormat, errors.New("encoding/hex: invalid byte")), wantStatus: http.StatusBadRequest, wantMessage: "Invalid key format. Please provide a valid hex or base64 key"},
		{name: "not found", err: service.ErrFileNotFound, wantStatus: http.StatusNotFound, wantMessage: "File not found"},
		{name: "too large", err: service.ErrFileTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantMessage: "File too large"},
		{name: "decryption failed", err: service.ErrDecryptionFailed, wantStatus: http.StatusBadRequest, wantMessage: "Decryption failed. Please check your key and try again."},
		{name: "decryption failed password", err: service.ErrDecryptionFailedPassword, wantStatus: http.StatusBadRequest, wantMessage: "Decryption failed. Please check your files and try again."},
		{name: "invalid form keeps detail private", err: fmt.Errorf("%w: %w", ErrInvalidForm, errors.New("multipart: boundary")), wantStatus: http.StatusBadRequest, wantMessage: "Invalid form data"},
		{name: "unknown", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, publicMessage(tt.err))
		})
	}
}
