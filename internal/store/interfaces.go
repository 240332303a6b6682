package store

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-file-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FileStorage keeps the files produced by the server in one flat directory.
// Names are plain file names; anything that looks like a path is rejected
// with [ErrInvalidFileName].
type FileStorage interface {
	// Save atomically writes data under name, replacing an existing file.
	Save(ctx context.Context, name string, data []byte) (int64, error)
	// Open returns the file for reading. A missing file yields [ErrFileNotFound].
	Open(ctx context.Context, name string) (*os.File, error)
	// Remove deletes the file. A missing file yields [ErrFileNotFound].
	Remove(ctx context.Context, name string) error
}

// ArtifactRepository is the registry of produced files.
type ArtifactRepository interface {
	// Save inserts the artifact or replaces the record with the same name.
	Save(ctx context.Context, artifact models.Artifact) error
	Find(ctx context.Context, name string) (models.Artifact, error)
	// ListExpired returns the artifacts created strictly before before,
	// oldest first.
	ListExpired(ctx context.Context, before time.Time) ([]models.Artifact, error)
	Delete(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
