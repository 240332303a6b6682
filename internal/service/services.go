package service

import (
	"fmt"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/crypto"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/store"
	"github.com/MKhiriev/go-file-crypt/models"
)

type Services struct {
	CryptService   CryptService
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewFileCipher(models.Mode(cfg.App.Mode))
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	cryptService, err := NewCryptService(cipher, storages.Files, storages.Artifacts, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating crypt service: %w", err)
	}

	fileService, err := NewFileService(storages.Files, storages.Artifacts, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating file service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CryptService:   cryptService,
		FileService:    fileService,
		AppInfoService: appInfoService,
	}, nil
}
