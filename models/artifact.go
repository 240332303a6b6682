package models

import "time"

// ArtifactKind tells what a stored file is.
type ArtifactKind string

const (
	ArtifactEncrypted ArtifactKind = "encrypted"
	ArtifactMetadata  ArtifactKind = "metadata"
	ArtifactDecrypted ArtifactKind = "decrypted"
)

// Artifact is the registry record of a file produced by the server and
// available for download until it expires.
type Artifact struct {
	Name      string
	Kind      ArtifactKind
	Size      int64
	CreatedAt time.Time
}
