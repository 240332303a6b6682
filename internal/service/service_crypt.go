package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/crypto"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/store"
	"github.com/MKhiriev/go-file-crypt/models"
)

const (
	encryptedSuffix   = ".enc"
	metadataSuffix    = ".meta"
	defaultDecrypted  = "decrypted_file"
	metadataIndentStr = "  "
)

type cryptService struct {
	cipher    crypto.FileCipher
	files     store.FileStorage
	artifacts store.ArtifactRepository
	now       func() time.Time

	logger *logger.Logger
}

// NewCryptService wires a [CryptService] for the mode of cipher.
func NewCryptService(cipher crypto.FileCipher, files store.FileStorage, artifacts store.ArtifactRepository, logger *logger.Logger) (CryptService, error) {
	if cipher == nil || files == nil || artifacts == nil {
		return nil, ErrNilDependency
	}

	return &cryptService{
		cipher:    cipher,
		files:     files,
		artifacts: artifacts,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *cryptService) Mode() models.Mode {
	return s.cipher.Mode()
}

func (s *cryptService) GenerateKey(ctx context.Context) (models.GeneratedKey, error) {
	if s.Mode() != models.ModeKey {
		return models.GeneratedKey{}, ErrKeyGenerationUnsupported
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cryptService.GenerateKey").Msg("error generating key")
		return models.GeneratedKey{}, err
	}

	keyHex, keyB64 := crypto.EncodeKey(key)
	return models.GeneratedKey{KeyHex: keyHex, KeyBase64: keyB64}, nil
}

func (s *cryptService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error) {
	log := logger.FromContext(ctx)

	inputName, err := store.SanitizeName(req.File.Name)
	if err != nil {
		return models.EncryptResult{}, ErrNoFileSelected
	}

	secret, err := s.encryptSecret(req.Secret)
	if err != nil {
		return models.EncryptResult{}, err
	}

	outputName, err := encryptOutputName(req.OutputName, inputName)
	if err != nil {
		return models.EncryptResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.EncryptResult{}, err
	}

	blob, meta, err := s.cipher.Encrypt(req.File.Data, secret)
	if err != nil {
		log.Err(err).Str("func", "*cryptService.Encrypt").Msg("error encrypting file")
		return models.EncryptResult{}, err
	}
	meta.InputFile = inputName
	meta.OutputFile = outputName

	metaName := outputName + metadataSuffix
	metaJSON, err := json.MarshalIndent(meta, "", metadataIndentStr)
	if err != nil {
		return models.EncryptResult{}, fmt.Errorf("error encoding metadata: %w", err)
	}

	if err := s.store(ctx, outputName, models.ArtifactEncrypted, blob); err != nil {
		return models.EncryptResult{}, err
	}
	if err := s.store(ctx, metaName, models.ArtifactMetadata, metaJSON); err != nil {
		return models.EncryptResult{}, err
	}

	log.Info().Str("input", inputName).Str("output", outputName).Str("mode", s.Mode().String()).Msg("file encrypted")

	return models.EncryptResult{
		EncryptedFile: outputName,
		MetadataFile:  metaName,
		Metadata:      meta,
	}, nil
}

func (s *cryptService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	log := logger.FromContext(ctx)

	encryptedName, err := store.SanitizeName(req.EncryptedFile.Name)
	if err != nil {
		return models.DecryptResult{}, ErrNoEncryptedFileSelected
	}

	secret, err := s.decryptSecret(req)
	if err != nil {
		return models.DecryptResult{}, err
	}

	outputName, err := decryptOutputName(req.OutputName, req.Metadata, encryptedName)
	if err != nil {
		return models.DecryptResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.DecryptResult{}, err
	}

	plaintext, err := s.cipher.Decrypt(req.EncryptedFile.Data, secret, req.Metadata)
	if err != nil {
		log.Warn().Err(err).Str("func", "*cryptService.Decrypt").Str("file", encryptedName).Msg("decryption failed")
		return models.DecryptResult{}, s.decryptionFailed()
	}

	if err := s.store(ctx, outputName, models.ArtifactDecrypted, plaintext); err != nil {
		return models.DecryptResult{}, err
	}

	log.Info().Str("input", encryptedName).Str("output", outputName).Str("mode", s.Mode().String()).Msg("file decrypted")

	return models.DecryptResult{DecryptedFile: outputName}, nil
}

// decryptionFailed names what the user should check: the key or, in password
// mode, the uploaded files.
func (s *cryptService) decryptionFailed() error {
	if s.Mode() == models.ModePassword {
		return ErrDecryptionFailedPassword
	}
	return ErrDecryptionFailed
}

func (s *cryptService) encryptSecret(secret string) (string, error) {
	if s.Mode() == models.ModeKey {
		// an empty key means "generate one"
		return strings.TrimSpace(secret), nil
	}

	if secret == "" {
		return "", ErrPasswordRequired
	}
	return secret, nil
}

func (s *cryptService) decryptSecret(req models.DecryptRequest) (string, error) {
	keyMode := s.Mode() == models.ModeKey

	if meta := req.Metadata; meta != nil {
		switch {
		case keyMode && meta.KeyBase64 != "":
			return meta.KeyBase64, nil
		case keyMode && meta.KeyHex != "":
			return meta.KeyHex, nil
		case keyMode:
			return "", ErrMetadataHasNoKey
		case meta.Password != "":
			return meta.Password, nil
		default:
			return "", ErrMetadataHasNoPassword
		}
	}

	if keyMode {
		if key := strings.TrimSpace(req.Secret); key != "" {
			return key, nil
		}
		return "", ErrKeyRequired
	}

	if req.Secret == "" {
		return "", ErrPasswordRequired
	}
	return req.Secret, nil
}

// store writes the file and records it in the registry.
func (s *cryptService) store(ctx context.Context, name string, kind models.ArtifactKind, data []byte) error {
	size, err := s.files.Save(ctx, name, data)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cryptService.store").Str("file", name).Msg("error saving file")
		return fmt.Errorf("error saving %s: %w", name, err)
	}

	artifact := models.Artifact{
		Name:      name,
		Kind:      kind,
		Size:      size,
		CreatedAt: s.now().UTC(),
	}
	if err := s.artifacts.Save(ctx, artifact); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cryptService.store").Str("file", name).Msg("error registering artifact")
		return fmt.Errorf("error registering %s: %w", name, err)
	}

	return nil
}

// encryptOutputName defaults to "<input>.enc" and always ends in ".enc".
func encryptOutputName(requested, inputName string) (string, error) {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = inputName + encryptedSuffix
	}
	if !strings.HasSuffix(name, encryptedSuffix) {
		name += encryptedSuffix
	}

	return sanitizeOutput(name)
}

// decryptOutputName picks the requested name first. Otherwise a metadata
// decrypt restores the original name and a manual one strips ".enc"; both fall
// back to "decrypted_file".
func decryptOutputName(requested string, meta *models.FileMetadata, encryptedName string) (string, error) {
	if name := strings.TrimSpace(requested); name != "" {
		return sanitizeOutput(name)
	}

	if meta != nil {
		if name := strings.TrimSpace(meta.InputFile); name != "" {
			return sanitizeOutput(name)
		}
		return defaultDecrypted, nil
	}

	if strings.HasSuffix(encryptedName, encryptedSuffix) {
		if trimmed := strings.TrimSuffix(encryptedName, encryptedSuffix); trimmed != "" {
			return sanitizeOutput(trimmed)
		}
	}

	return defaultDecrypted, nil
}

func sanitizeOutput(name string) (string, error) {
	clean, err := store.SanitizeName(name)
	if errors.Is(err, store.ErrInvalidFileName) {
		return "", fmt.Errorf("invalid output name %q: %w", name, err)
	}
	return clean, err
}
