package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-crypt/internal/crypto"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/mock"
	"github.com/MKhiriev/go-file-crypt/models"
)

var fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestCryptSvc(t *testing.T, mode models.Mode) (*cryptService, *mock.MockFileCipher, *mock.MockFileStorage, *mock.MockArtifactRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cipher := mock.NewMockFileCipher(ctrl)
	cipher.EXPECT().Mode().Return(mode).AnyTimes()
	files := mock.NewMockFileStorage(ctrl)
	artifacts := mock.NewMockArtifactRepository(ctrl)

	svc, err := NewCryptService(cipher, files, artifacts, logger.Nop())
	require.NoError(t, err)

	s := svc.(*cryptService)
	s.now = func() time.Time { return fixedNow }
	return s, cipher, files, artifacts
}

func TestNewCryptService_NilDependency(t *testing.T) {
	_, err := NewCryptService(nil, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)
}

// ── GenerateKey ──────────────────────────────────────────────────────────────

func TestCryptService_GenerateKey(t *testing.T) {
	svc, _, _, _ := newTestCryptSvc(t, models.ModeKey)

	key, err := svc.GenerateKey(context.Background())
	require.NoError(t, err)
	assert.Len(t, key.KeyHex, 64)

	raw, err := crypto.ParseKey(key.KeyBase64)
	require.NoError(t, err)
	fromHex, err := crypto.ParseKey(key.KeyHex)
	require.NoError(t, err)
	assert.Equal(t, raw, fromHex)
}

func TestCryptService_GenerateKey_PasswordMode(t *testing.T) {
	svc, _, _, _ := newTestCryptSvc(t, models.ModePassword)

	_, err := svc.GenerateKey(context.Background())
	assert.ErrorIs(t, err, ErrKeyGenerationUnsupported)
}

// ── Encrypt ──────────────────────────────────────────────────────────────────

func TestCryptService_Encrypt_KeyMode_Success(t *testing.T) {
	svc, cipher, files, artifacts := newTestCryptSvc(t, models.ModeKey)
	ctx := context.Background()

	meta := models.FileMetadata{KeyHex: "aa", KeyBase64: "qg==", Nonce: "bm9uY2U="}
	cipher.EXPECT().Encrypt([]byte("plain"), "trimmed-key").Return([]byte("blob"), meta, nil)

	files.EXPECT().Save(ctx, "report.pdf.enc", []byte("blob")).Return(int64(4), nil)
	artifacts.EXPECT().Save(ctx, models.Artifact{Name: "report.pdf.enc", Kind: models.ArtifactEncrypted, Size: 4, CreatedAt: fixedNow}).Return(nil)

	files.EXPECT().Save(ctx, "report.pdf.enc.meta", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte) (int64, error) {
			var got models.FileMetadata
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, "report.pdf", got.InputFile)
			assert.Equal(t, "report.pdf.enc", got.OutputFile)
			assert.Equal(t, "aa", got.KeyHex)
			assert.Contains(t, string(data), "\n  \"input_file\"")
			return int64(len(data)), nil
		},
	)
	artifacts.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	res, err := svc.Encrypt(ctx, models.EncryptRequest{
		File:   models.UploadedFile{Name: "report.pdf", Data: []byte("plain")},
		Secret: "  trimmed-key  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "report.pdf.enc", res.EncryptedFile)
	assert.Equal(t, "report.pdf.enc.meta", res.MetadataFile)
	assert.Equal(t, "report.pdf", res.Metadata.InputFile)
	assert.Equal(t, "aa", res.Metadata.KeyHex)
}

func TestCryptService_Encrypt_NoFile(t *testing.T) {
	svc, _, _, _ := newTestCryptSvc(t, models.ModeKey)

	_, err := svc.Encrypt(context.Background(), models.EncryptRequest{})
	assert.ErrorIs(t, err, ErrNoFileSelected)
}

func TestCryptService_Encrypt_PasswordRequired(t *testing.T) {
	svc, _, _, _ := newTestCryptSvc(t, models.ModePassword)

	_, err := svc.Encrypt(context.Background(), models.EncryptRequest{
		File: models.UploadedFile{Name: "a.txt", Data: []byte("x")},
	})
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestCryptService_Encrypt_CipherError(t *testing.T) {
	svc, cipher, _, _ := newTestCryptSvc(t, models.ModeKey)

	cipher.EXPECT().Encrypt(gomock.Any(), "bad").Return(nil, models.FileMetadata{}, crypto.ErrInvalidKeyLength)

	_, err := svc.Encrypt(context.Background(), models.EncryptRequest{
		File:   models.UploadedFile{Name: "a.txt"},
		Secret: "bad",
	})
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
}

func TestCryptService_Encrypt_StorageError(t *testing.T) {
	svc, cipher, files, _ := newTestCryptSvc(t, models.ModeKey)

	cipher.EXPECT().Encrypt(gomock.Any(), "").Return([]byte("blob"), models.FileMetadata{}, nil)
	files.EXPECT().Save(gomock.Any(), "a.txt.enc", gomock.Any()).Return(int64(0), errors.New("disk full"))

	_, err := svc.Encrypt(context.Background(), models.EncryptRequest{File: models.UploadedFile{Name: "a.txt"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCryptService_Encrypt_CanceledContext(t *testing.T) {
	svc, _, _, _ := newTestCryptSvc(t, models.ModeKey)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Encrypt(ctx, models.EncryptRequest{File: models.UploadedFile{Name: "a.txt"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncryptOutputName(t *testing.T) {
	tests := []struct {
		requested, input, want string
	}{
		{requested: "", input: "photo.jpg", want: "photo.jpg.enc"},
		{requested: "secret", input: "photo.jpg", want: "secret.enc"},
		{requested: "secret.enc", input: "photo.jpg", want: "secret.enc"},
		{requested: "  spaced  ", input: "photo.jpg", want: "spaced.enc"},
		{requested: "../up/out", input: "photo.jpg", want: "out.enc"},
	}

	for _, tt := range tests {
		t.Run(tt.requested+"|"+tt.input, func(t *testing.T) {
			got, err := encryptOutputName(tt.requested, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Decrypt ──────────────────────────────────────────────────────────────────

func TestCryptService_Decrypt_Manual_KeyMode(t *testing.T) {
	svc, cipher, files, artifacts := newTestCryptSvc(t, models.ModeKey)
	ctx := context.Background()

	cipher.EXPECT().Decrypt([]byte("blob"), "the-key", (*models.FileMetadata)(nil)).Return([]byte("plain"), nil)
	files.EXPECT().Save(ctx, "notes.txt", []byte("plain")).Return(int64(5), nil)
	artifacts.EXPECT().Save(ctx, models.Artifact{Name: "notes.txt", Kind: models.ArtifactDecrypted, Size: 5, CreatedAt: fixedNow}).Return(nil)

	res, err := svc.Decrypt(ctx, models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: "notes.txt.enc", Data: []byte("blob")},
		Secret:        " the-key ",
	})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", res.DecryptedFile)
}

func TestCryptService_Decrypt_WithMetadata(t *testing.T) {
	svc, cipher, files, artifacts := newTestCryptSvc(t, models.ModeKey)

	meta := &models.FileMetadata{InputFile: "original.docx", KeyHex: "hex", KeyBase64: "b64", Nonce: "n"}
	cipher.EXPECT().Decrypt([]byte("blob"), "b64", meta).Return([]byte("doc"), nil)
	files.EXPECT().Save(gomock.Any(), "original.docx", []byte("doc")).Return(int64(3), nil)
	artifacts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Decrypt(context.Background(), models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: "renamed.enc", Data: []byte("blob")},
		Metadata:      meta,
	})
	require.NoError(t, err)
	assert.Equal(t, "original.docx", res.DecryptedFile)
}

func TestCryptService_Decrypt_PasswordFromMetadata(t *testing.T) {
	svc, cipher, files, artifacts := newTestCryptSvc(t, models.ModePassword)

	meta := &models.FileMetadata{Password: "pw", Salt: "s", Nonce: "n"}
	cipher.EXPECT().Decrypt(gomock.Any(), "pw", meta).Return([]byte("x"), nil)
	files.EXPECT().Save(gomock.Any(), "custom.bin", gomock.Any()).Return(int64(1), nil)
	artifacts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Decrypt(context.Background(), models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: "a.enc"},
		Metadata:      meta,
		OutputName:    "custom.bin",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom.bin", res.DecryptedFile)
}

func TestCryptService_Decrypt_SecretErrors(t *testing.T) {
	tests := []struct {
		name    string
		mode    models.Mode
		req     models.DecryptRequest
		wantErr error
	}{
		{
			name:    "no encrypted file",
			mode:    models.ModeKey,
			req:     models.DecryptRequest{Secret: "k"},
			wantErr: ErrNoEncryptedFileSelected,
		},
		{
			name:    "key required",
			mode:    models.ModeKey,
			req:     models.DecryptRequest{EncryptedFile: models.UploadedFile{Name: "a.enc"}, Secret: "   "},
			wantErr: ErrKeyRequired,
		},
		{
			name:    "password required",
			mode:    models.ModePassword,
			req:     models.DecryptRequest{EncryptedFile: models.UploadedFile{Name: "a.enc"}},
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "metadata without key",
			mode:    models.ModeKey,
			req:     models.DecryptRequest{EncryptedFile: models.UploadedFile{Name: "a.enc"}, Metadata: &models.FileMetadata{Nonce: "n"}},
			wantErr: ErrMetadataHasNoKey,
		},
		{
			name:    "metadata without password",
			mode:    models.ModePassword,
			req:     models.DecryptRequest{EncryptedFile: models.UploadedFile{Name: "a.enc"}, Metadata: &models.FileMetadata{KeyHex: "k"}},
			wantErr: ErrMetadataHasNoPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestCryptSvc(t, tt.mode)

			_, err := svc.Decrypt(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCryptService_Decrypt_AuthFailure(t *testing.T) {
	svc, cipher, _, _ := newTestCryptSvc(t, models.ModeKey)

	cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, crypto.ErrAuthenticationFailed)

	_, err := svc.Decrypt(context.Background(), models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: "a.enc"},
		Secret:        "k",
	})
	require.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, "Decryption failed. Please check your key and try again.", err.Error())
}

func TestCryptService_Decrypt_AuthFailure_PasswordMode(t *testing.T) {
	svc, cipher, _, _ := newTestCryptSvc(t, models.ModePassword)

	cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, crypto.ErrAuthenticationFailed)

	_, err := svc.Decrypt(context.Background(), models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: "a.enc"},
		Secret:        "hunter2",
	})
	require.ErrorIs(t, err, ErrDecryptionFailedPassword)
	assert.Equal(t, "Decryption failed. Please check your files and try again.", err.Error())
}

func TestDecryptOutputName(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		meta      *models.FileMetadata
		encrypted string
		want      string
	}{
		{name: "requested wins", requested: "out.txt", meta: &models.FileMetadata{InputFile: "in.txt"}, encrypted: "x.enc", want: "out.txt"},
		{name: "metadata input", meta: &models.FileMetadata{InputFile: "in.txt"}, encrypted: "x.enc", want: "in.txt"},
		{name: "strip enc", encrypted: "photo.jpg.enc", want: "photo.jpg"},
		{name: "no enc suffix", encrypted: "photo.bin", want: "decrypted_file"},
		{name: "enc inside name", encrypted: "photo.enc.bin", want: "decrypted_file"},
		{name: "only suffix", encrypted: ".enc", want: "decrypted_file"},
		{name: "metadata without input", meta: &models.FileMetadata{Nonce: "n"}, encrypted: "photo.jpg.enc", want: "decrypted_file"},
		{name: "metadata blank input", meta: &models.FileMetadata{InputFile: "  "}, encrypted: "x.enc", want: "decrypted_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decryptOutputName(tt.requested, tt.meta, tt.encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── real cipher ──────────────────────────────────────────────────────────────

// TestCryptService_RoundTrip runs a real key cipher through the service to
// check that the sidecar written on encrypt decrypts the blob.
func TestCryptService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	artifacts := mock.NewMockArtifactRepository(ctrl)
	artifacts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	saved := map[string][]byte{}
	files.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string, data []byte) (int64, error) {
			saved[name] = data
			return int64(len(data)), nil
		},
	).AnyTimes()

	svc, err := NewCryptService(crypto.NewKeyCipher(), files, artifacts, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	enc, err := svc.Encrypt(ctx, models.EncryptRequest{File: models.UploadedFile{Name: "hello.txt", Data: []byte("hello, world")}})
	require.NoError(t, err)

	var meta models.FileMetadata
	require.NoError(t, json.Unmarshal(saved[enc.MetadataFile], &meta))

	dec, err := svc.Decrypt(ctx, models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: enc.EncryptedFile, Data: saved[enc.EncryptedFile]},
		Metadata:      &meta,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", dec.DecryptedFile)
	assert.Equal(t, "hello, world", string(saved["hello.txt"]))

	// manual path with the hex key
	dec, err = svc.Decrypt(ctx, models.DecryptRequest{
		EncryptedFile: models.UploadedFile{Name: enc.EncryptedFile, Data: saved[enc.EncryptedFile]},
		Secret:        enc.Metadata.KeyHex,
		OutputName:    "manual.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(saved[dec.DecryptedFile]))
}
