package service

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-file-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CryptService encrypts and decrypts uploaded files and keeps the results
// available for download.
type CryptService interface {
	Mode() models.Mode
	// GenerateKey returns a fresh 256-bit key. Key mode only.
	GenerateKey(ctx context.Context) (models.GeneratedKey, error)
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error)
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error)
}

// FileService serves and expires the produced files.
type FileService interface {
	// Open returns a produced file for download. Unknown or unsafe names
	// yield [ErrFileNotFound].
	Open(ctx context.Context, name string) (*os.File, error)
	// CleanupExpired removes files older than ttl and returns how many
	// artifacts were removed.
	CleanupExpired(ctx context.Context, ttl time.Duration) (int, error)
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
