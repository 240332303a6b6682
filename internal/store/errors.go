package store

import "errors"

// Sentinel errors returned by the storages. Callers should use [errors.Is].
var (
	// ErrInvalidFileName is returned for empty names, "." and "..", and
	// names with a directory part.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrFileNotFound is returned when the named file does not exist in the
	// upload directory.
	ErrFileNotFound = errors.New("file not found")

	// ErrArtifactNotFound is returned when no registry record has the name.
	ErrArtifactNotFound = errors.New("artifact was not found")

	// ErrArtifactNotSaved is returned when an upsert affects no rows.
	ErrArtifactNotSaved = errors.New("artifact was not saved")

	// ErrRegistryNotMigrated is returned when the artifacts table is missing.
	ErrRegistryNotMigrated = errors.New("artifact registry is not migrated")

	// ErrUnsupportedDSN is returned when a DSN names neither a SQLite file
	// nor a PostgreSQL server.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan artifact row")
	ErrScanningRows       = errors.New("failed to scan artifact rows")
)
