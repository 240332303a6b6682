package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-file-crypt/models"
)

// KeyCipher seals files with a 256-bit key. Blob layout: nonce || ciphertext.
type KeyCipher struct{}

// NewKeyCipher returns a [KeyCipher].
func NewKeyCipher() *KeyCipher {
	return &KeyCipher{}
}

func (c *KeyCipher) Mode() models.Mode {
	return models.ModeKey
}

// Encrypt seals plaintext with the key in secret, or with a new random key
// when secret is empty.
func (c *KeyCipher) Encrypt(plaintext []byte, secret string) ([]byte, models.FileMetadata, error) {
	var (
		key []byte
		err error
	)
	if secret == "" {
		key, err = GenerateKey()
	} else {
		key, err = ParseKey(secret)
	}
	if err != nil {
		return nil, models.FileMetadata{}, err
	}

	nonce, ciphertext, err := seal(key, plaintext)
	if err != nil {
		return nil, models.FileMetadata{}, err
	}

	keyHex, keyB64 := EncodeKey(key)
	meta := models.FileMetadata{
		KeyHex:    keyHex,
		KeyBase64: keyB64,
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
	}

	return concat(nonce, ciphertext), meta, nil
}

func (c *KeyCipher) Decrypt(blob []byte, secret string, params *models.FileMetadata) ([]byte, error) {
	key, err := ParseKey(secret)
	if err != nil {
		return nil, err
	}

	if len(blob) < NonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce := blob[:NonceSize]
	if params != nil && params.Nonce != "" {
		nonce, err = base64.StdEncoding.DecodeString(params.Nonce)
		if err != nil || len(nonce) != NonceSize {
			return nil, fmt.Errorf("%w: nonce", ErrInvalidParams)
		}
	}

	return open(key, nonce, blob[NonceSize:])
}

// GenerateKey returns 32 random bytes.
func GenerateKey() ([]byte, error) {
	key, err := randomBytes(KeySize)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}
	return key, nil
}

// EncodeKey returns the hex and standard base64 encodings of key.
func EncodeKey(key []byte) (hexKey, base64Key string) {
	return hex.EncodeToString(key), base64.StdEncoding.EncodeToString(key)
}

// ParseKey decodes a key given as 64 hex characters or as base64. The
// decoded key must be exactly 32 bytes.
func ParseKey(s string) ([]byte, error) {
	var (
		key []byte
		err error
	)
	if len(s) == 2*KeySize {
		key, err = hex.DecodeString(s)
	}
	if key == nil || err != nil {
		key, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, err)
		}
	}

	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	return key, nil
}
