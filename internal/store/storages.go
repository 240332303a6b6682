package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
)

// Storages bundles the server's persistence layer.
type Storages struct {
	Files     FileStorage
	Artifacts ArtifactRepository

	db *DB
}

// NewStorages opens and migrates the registry database and prepares the
// upload directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	files, err := NewLocalFileStorage(cfg.Files.UploadDir, log)
	if err != nil {
		return nil, err
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting artifact registry: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		Files:     files,
		Artifacts: NewArtifactRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
