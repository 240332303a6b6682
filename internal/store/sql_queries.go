package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-file-crypt/models"
)

const artifactsTable = "artifacts"

var artifactColumns = []string{"name", "kind", "size", "created_at"}

// buildSaveArtifactQuery builds an upsert keyed by name. ON CONFLICT ...
// DO UPDATE is understood by both SQLite and PostgreSQL.
func buildSaveArtifactQuery(d Dialect, a models.Artifact) (string, []any, error) {
	return sq.Insert(artifactsTable).
		Columns(artifactColumns...).
		Values(a.Name, string(a.Kind), a.Size, a.CreatedAt.UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET kind = excluded.kind, size = excluded.size, created_at = excluded.created_at").
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildFindArtifactQuery(d Dialect, name string) (string, []any, error) {
	return sq.Select(artifactColumns...).
		From(artifactsTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildListExpiredQuery(d Dialect, before time.Time) (string, []any, error) {
	return sq.Select(artifactColumns...).
		From(artifactsTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		OrderBy("created_at ASC").
		PlaceholderFormat(d.placeholder()).
		ToSql()
}

func buildDeleteArtifactQuery(d Dialect, name string) (string, []any, error) {
	return sq.Delete(artifactsTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(d.placeholder()).
		ToSql()
}
