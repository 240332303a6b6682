package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-file-crypt/models"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Iterations is the PBKDF2-HMAC-SHA256 work factor.
const PBKDF2Iterations = 100_000

// PasswordCipher seals files with a key derived from a password.
// Blob layout: salt || nonce || ciphertext.
type PasswordCipher struct {
	iterations int
}

// NewPasswordCipher returns a [PasswordCipher] using [PBKDF2Iterations].
func NewPasswordCipher() *PasswordCipher {
	return &PasswordCipher{iterations: PBKDF2Iterations}
}

func (c *PasswordCipher) Mode() models.Mode {
	return models.ModePassword
}

// DeriveKey stretches password with salt into a 32-byte key.
func (c *PasswordCipher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, KeySize, sha256.New)
}

func (c *PasswordCipher) Encrypt(plaintext []byte, password string) ([]byte, models.FileMetadata, error) {
	if password == "" {
		return nil, models.FileMetadata{}, ErrEmptyPassword
	}

	salt, err := randomBytes(SaltSize)
	if err != nil {
		return nil, models.FileMetadata{}, fmt.Errorf("generating salt: %w", err)
	}

	nonce, ciphertext, err := seal(c.DeriveKey(password, salt), plaintext)
	if err != nil {
		return nil, models.FileMetadata{}, err
	}

	meta := models.FileMetadata{
		Salt:     base64.StdEncoding.EncodeToString(salt),
		Nonce:    base64.StdEncoding.EncodeToString(nonce),
		Password: password,
	}

	return concat(salt, nonce, ciphertext), meta, nil
}

func (c *PasswordCipher) Decrypt(blob []byte, password string, params *models.FileMetadata) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	const header = SaltSize + NonceSize
	if len(blob) < header {
		return nil, ErrCiphertextTooShort
	}

	salt, nonce := blob[:SaltSize], blob[SaltSize:header]
	if params != nil && params.Salt != "" && params.Nonce != "" {
		var err error
		if salt, err = base64.StdEncoding.DecodeString(params.Salt); err != nil {
			return nil, fmt.Errorf("%w: salt", ErrInvalidParams)
		}
		if nonce, err = base64.StdEncoding.DecodeString(params.Nonce); err != nil || len(nonce) != NonceSize {
			return nil, fmt.Errorf("%w: nonce", ErrInvalidParams)
		}
	}

	return open(c.DeriveKey(password, salt), nonce, blob[header:])
}
