package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-file-crypt/internal/service"
	"github.com/MKhiriev/go-file-crypt/models"
)

// parseMultipart reads the multipart body of r. A body over the upload
// limit yields [service.ErrFileTooLarge].
func parseMultipart(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &tooLarge):
		return service.ErrFileTooLarge
	default:
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
}

// formFile reads the uploaded file of the given field. A missing part or a
// part without a filename yields missing.
func formFile(r *http.Request, field string, missing error) (models.UploadedFile, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return models.UploadedFile{}, missing
	}
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	if header.Filename == "" {
		return models.UploadedFile{}, missing
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error reading %s: %w", field, err)
	}

	return models.UploadedFile{Name: header.Filename, Data: data}, nil
}

// formMetadata decodes the JSON sidecar uploaded in the meta_file field.
func formMetadata(r *http.Request) (*models.FileMetadata, error) {
	file, err := formFile(r, models.FieldMetaFile, service.ErrNoMetadataFileSelected)
	if err != nil {
		return nil, err
	}

	var meta models.FileMetadata
	if err := json.Unmarshal(file.Data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidMetadata, err)
	}

	return &meta, nil
}

// secretField names the form field carrying the secret for mode.
func secretField(mode models.Mode) string {
	if mode == models.ModePassword {
		return models.FieldPassword
	}
	return models.FieldKey
}
