package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/MKhiriev/go-file-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// ParseKey
// ─────────────────────────────────────────────

func TestParseKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, KeySize)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{name: "hex", input: hex.EncodeToString(raw), want: raw},
		{name: "upper hex", input: strings.ToUpper(hex.EncodeToString(raw)), want: raw},
		{name: "base64", input: base64.StdEncoding.EncodeToString(raw), want: raw},
		{name: "garbage", input: "not a key!", wantErr: ErrInvalidKeyFormat},
		{name: "short base64", input: base64.StdEncoding.EncodeToString(raw[:16]), wantErr: ErrInvalidKeyLength},
		{name: "64 chars non hex", input: strings.Repeat("QUJD", 16), wantErr: ErrInvalidKeyLength},
		{name: "empty", input: "", wantErr: ErrInvalidKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_FormatErrorMessage(t *testing.T) {
	_, err := ParseKey("%%%")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid key format. Please provide a valid hex or base64 key: "))
}

func TestGenerateKey_RandomAndSized(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)

	assert.Len(t, a, KeySize)
	assert.NotEqual(t, a, b)
}

func TestEncodeKey_RoundTripsThroughParseKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	h, b := EncodeKey(key)
	assert.Len(t, h, 64)

	fromHex, err := ParseKey(h)
	require.NoError(t, err)
	fromB64, err := ParseKey(b)
	require.NoError(t, err)

	assert.Equal(t, key, fromHex)
	assert.Equal(t, key, fromB64)
}

// ─────────────────────────────────────────────
// KeyCipher
// ─────────────────────────────────────────────

func TestKeyCipher_EncryptGeneratesKeyWhenEmpty(t *testing.T) {
	c := NewKeyCipher()

	blob, meta, err := c.Encrypt([]byte("hello"), "")
	require.NoError(t, err)

	assert.Len(t, meta.KeyHex, 64)
	assert.NotEmpty(t, meta.KeyBase64)
	assert.Empty(t, meta.Password)
	assert.Empty(t, meta.Salt)
	assert.Len(t, blob, NonceSize+len("hello")+16)

	nonce, err := base64.StdEncoding.DecodeString(meta.Nonce)
	require.NoError(t, err)
	assert.Equal(t, blob[:NonceSize], nonce)
}

func TestKeyCipher_RoundTrip(t *testing.T) {
	c := NewKeyCipher()
	key, _ := GenerateKey()
	keyHex, keyB64 := EncodeKey(key)
	plaintext := []byte("the quick brown fox")

	blob, meta, err := c.Encrypt(plaintext, keyHex)
	require.NoError(t, err)
	assert.Equal(t, keyHex, meta.KeyHex)
	assert.Equal(t, keyB64, meta.KeyBase64)

	// header nonce
	got, err := c.Decrypt(blob, keyB64, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	// sidecar nonce
	got, err = c.Decrypt(blob, keyHex, &meta)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestKeyCipher_EmptyPlaintext(t *testing.T) {
	c := NewKeyCipher()

	blob, meta, err := c.Encrypt(nil, "")
	require.NoError(t, err)

	got, err := c.Decrypt(blob, meta.KeyHex, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKeyCipher_WrongKey(t *testing.T) {
	c := NewKeyCipher()
	blob, _, err := c.Encrypt([]byte("secret"), "")
	require.NoError(t, err)

	other, _ := GenerateKey()
	otherHex, _ := EncodeKey(other)

	_, err = c.Decrypt(blob, otherHex, nil)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestKeyCipher_TamperedBlob(t *testing.T) {
	c := NewKeyCipher()
	blob, meta, err := c.Encrypt([]byte("secret"), "")
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xFF

	_, err = c.Decrypt(blob, meta.KeyHex, nil)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestKeyCipher_Errors(t *testing.T) {
	c := NewKeyCipher()
	key, _ := GenerateKey()
	keyHex, _ := EncodeKey(key)

	_, _, err := c.Encrypt([]byte("x"), "bad key")
	assert.ErrorIs(t, err, ErrInvalidKeyFormat)

	_, err = c.Decrypt([]byte("short"), keyHex, nil)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	_, err = c.Decrypt(make([]byte, 40), keyHex, &models.FileMetadata{Nonce: "@@@"})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestNewFileCipher(t *testing.T) {
	c, err := NewFileCipher(models.ModeKey)
	require.NoError(t, err)
	assert.Equal(t, models.ModeKey, c.Mode())

	c, err = NewFileCipher(models.ModePassword)
	require.NoError(t, err)
	assert.Equal(t, models.ModePassword, c.Mode())

	_, err = NewFileCipher("rot13")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
