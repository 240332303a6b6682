package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-file-crypt/internal/logger"
)

// SanitizeName reduces a client supplied file name to its last path element.
// Both slash styles count as separators.
func SanitizeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return "", ErrInvalidFileName
	}
	return base, nil
}

// localFileStorage implements [FileStorage] on a local directory.
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage creates dir when missing and returns a [FileStorage]
// rooted there.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	return &localFileStorage{dir: dir, logger: logger}, nil
}

func (s *localFileStorage) path(name string) (string, error) {
	clean, err := SanitizeName(name)
	if err != nil || clean != name {
		return "", ErrInvalidFileName
	}
	return filepath.Join(s.dir, clean), nil
}

func (s *localFileStorage) Save(ctx context.Context, name string, data []byte) (int64, error) {
	target, err := s.path(name)
	if err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// staged under a unique name so readers never see a partial file
	tmp := filepath.Join(s.dir, "."+uuid.NewString()+".part")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return 0, fmt.Errorf("error writing file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("error moving file into place: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("file", name).Int("size", len(data)).Msg("file saved")
	return int64(len(data)), nil
}

func (s *localFileStorage) Open(_ context.Context, name string) (*os.File, error) {
	target, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrFileNotFound
	}

	return f, nil
}

func (s *localFileStorage) Remove(_ context.Context, name string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(target)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("error removing file: %w", err)
	}

	return nil
}
