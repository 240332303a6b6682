package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/models"
)

// artifactRepository is the SQL implementation of [ArtifactRepository].
type artifactRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewArtifactRepository constructs an [ArtifactRepository] on db.
func NewArtifactRepository(db *DB, logger *logger.Logger) ArtifactRepository {
	logger.Debug().Msg("creating artifact repository")
	return &artifactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *artifactRepository) Save(ctx context.Context, artifact models.Artifact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveArtifactQuery(r.db.dialect, artifact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.Save").Str("name", artifact.Name).Msg("error saving artifact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrArtifactNotSaved
	}

	return nil
}

func (r *artifactRepository) Find(ctx context.Context, name string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindArtifactQuery(r.db.dialect, name)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	artifact, err := scanArtifact(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Artifact{}, ErrArtifactNotFound
	case err != nil:
		log.Err(err).Str("func", "*artifactRepository.Find").Str("name", name).Msg("error finding artifact")
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return artifact, nil
}

func (r *artifactRepository) ListExpired(ctx context.Context, before time.Time) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpiredQuery(r.db.dialect, before)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.ListExpired").Msg("error querying expired artifacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	var artifacts []models.Artifact
	for rows.Next() {
		artifact, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artifacts = append(artifacts, artifact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return artifacts, nil
}

func (r *artifactRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteArtifactQuery(r.db.dialect, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.Delete").Str("name", name).Msg("error deleting artifact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrArtifactNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (models.Artifact, error) {
	var (
		a    models.Artifact
		kind string
	)
	if err := row.Scan(&a.Name, &kind, &a.Size, &a.CreatedAt); err != nil {
		return models.Artifact{}, err
	}
	a.Kind = models.ArtifactKind(kind)
	a.CreatedAt = a.CreatedAt.UTC()

	return a, nil
}
