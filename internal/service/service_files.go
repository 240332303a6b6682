package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/store"
)

type fileService struct {
	files     store.FileStorage
	artifacts store.ArtifactRepository
	now       func() time.Time

	logger *logger.Logger
}

func NewFileService(files store.FileStorage, artifacts store.ArtifactRepository, logger *logger.Logger) (FileService, error) {
	if files == nil || artifacts == nil {
		return nil, ErrNilDependency
	}

	return &fileService{
		files:     files,
		artifacts: artifacts,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *fileService) Open(ctx context.Context, name string) (*os.File, error) {
	f, err := s.files.Open(ctx, name)
	switch {
	case errors.Is(err, store.ErrFileNotFound), errors.Is(err, store.ErrInvalidFileName):
		return nil, ErrFileNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*fileService.Open").Str("file", name).Msg("error opening file")
		return nil, err
	}

	return f, nil
}

func (s *fileService) CleanupExpired(ctx context.Context, ttl time.Duration) (int, error) {
	expired, err := s.artifacts.ListExpired(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, artifact := range expired {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		// the file may already be gone; the record must go either way
		if err := s.files.Remove(ctx, artifact.Name); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			s.logger.Err(err).Str("file", artifact.Name).Msg("error removing expired file")
			continue
		}

		if err := s.artifacts.Delete(ctx, artifact.Name); err != nil && !errors.Is(err, store.ErrArtifactNotFound) {
			s.logger.Err(err).Str("file", artifact.Name).Msg("error removing expired artifact record")
			continue
		}

		removed++
	}

	return removed, nil
}
