package crypto

import "github.com/MKhiriev/go-file-crypt/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/file_cipher_mock.go -package=mock

// FileCipher seals and opens whole files with AES-256-GCM.
//
// Encrypt returns the blob to store and the mode specific part of the
// sidecar metadata (key or salt, nonce, secret). The caller fills in the
// file names.
//
// Decrypt opens a blob produced by Encrypt. When params is nil the nonce
// (and salt) are read from the blob header. When params carries them the
// header is skipped and the sidecar values are used instead.
type FileCipher interface {
	Mode() models.Mode
	Encrypt(plaintext []byte, secret string) ([]byte, models.FileMetadata, error)
	Decrypt(blob []byte, secret string, params *models.FileMetadata) ([]byte, error)
}

// NewFileCipher returns the cipher for mode.
func NewFileCipher(mode models.Mode) (FileCipher, error) {
	switch mode {
	case models.ModeKey:
		return NewKeyCipher(), nil
	case models.ModePassword:
		return NewPasswordCipher(), nil
	default:
		return nil, ErrUnknownMode
	}
}
