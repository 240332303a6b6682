// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/models"
)

// newTestAdapter creates an adapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func jsonServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: addr}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, "address %q", addr)
	}
}

// ── GenerateKey ──────────────────────────────────────────────────────────────

func TestGenerateKey_Success(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"key_hex":"ab","key_base64":"qw=="}`, func(r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/generate_key", r.URL.Path)
	})

	key, err := newTestAdapter(t, srv.URL).GenerateKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.GeneratedKey{KeyHex: "ab", KeyBase64: "qw=="}, key)
}

func TestGenerateKey_ServerReported(t *testing.T) {
	srv := jsonServer(t, http.StatusInternalServerError, `{"success":false,"error":"Internal server error"}`, nil)

	_, err := newTestAdapter(t, srv.URL).GenerateKey(context.Background())

	require.ErrorIs(t, err, ErrServerReported)
	assert.NotErrorIs(t, err, ErrNetwork)

	var envErr *EnvelopeError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, http.StatusInternalServerError, envErr.StatusCode)
	assert.Equal(t, "Internal server error", envErr.Error())
}

func TestGenerateKey_MalformedJSON(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `<html>proxy error</html>`, nil)

	_, err := newTestAdapter(t, srv.URL).GenerateKey(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrServerReported)
}

func TestGenerateKey_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GenerateKey(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "generate key", netErr.Op)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGenerateKey_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).GenerateKey(ctx)

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestEncrypt_SendsMultipart(t *testing.T) {
	path := writeTempFile(t, "report.pdf", "plain bytes")

	srv := jsonServer(t, http.StatusOK,
		`{"success":true,"encrypted_file":"report.pdf.enc","metadata_file":"report.pdf.enc.meta","metadata":{"input_file":"report.pdf","output_file":"report.pdf.enc","key_hex":"aa","key_base64":"qg==","nonce":"bg=="}}`,
		func(r *http.Request) {
			assert.Equal(t, "/encrypt", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			assert.Equal(t, "the-key", r.FormValue(models.FieldKey))
			assert.Equal(t, "out", r.FormValue(models.FieldOutputName))

			f, header, err := r.FormFile(models.FieldFile)
			require.NoError(t, err)
			defer f.Close()
			data, _ := io.ReadAll(f)
			assert.Equal(t, "report.pdf", header.Filename)
			assert.Equal(t, "plain bytes", string(data))
		},
	)

	payload := models.NewFormPayload()
	payload.Set(models.FieldKey, "the-key")
	payload.Set(models.FieldOutputName, "out")
	payload.SetFile(models.FieldFile, path)

	res, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "report.pdf.enc", res.EncryptedFile)
	assert.Equal(t, "report.pdf.enc.meta", res.MetadataFile)
	assert.Equal(t, "aa", res.Metadata.KeyHex)
}

func TestEncrypt_ServerError(t *testing.T) {
	path := writeTempFile(t, "a.txt", "x")
	srv := jsonServer(t, http.StatusBadRequest, `{"success":false,"error":"Key must be 256 bits (32 bytes)"}`, nil)

	payload := models.NewFormPayload()
	payload.SetFile(models.FieldFile, path)

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), payload)

	require.ErrorIs(t, err, ErrServerReported)
	assert.Equal(t, "Key must be 256 bits (32 bytes)", err.Error())
}

func TestEncrypt_MissingLocalFile(t *testing.T) {
	called := false
	srv := jsonServer(t, http.StatusOK, `{"success":true}`, func(*http.Request) { called = true })

	payload := models.NewFormPayload()
	payload.SetFile(models.FieldFile, filepath.Join(t.TempDir(), "missing.bin"))

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), payload)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.False(t, called)
}

func TestDecrypt_WithMetadata(t *testing.T) {
	enc := writeTempFile(t, "a.txt.enc", "blob")
	meta := writeTempFile(t, "a.txt.enc.meta", `{"input_file":"a.txt"}`)

	srv := jsonServer(t, http.StatusOK, `{"success":true,"decrypted_file":"a.txt"}`, func(r *http.Request) {
		assert.Equal(t, "/decrypt", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "true", r.FormValue(models.FieldUseMetadata))

		_, encHeader, err := r.FormFile(models.FieldEncryptedFile)
		require.NoError(t, err)
		assert.Equal(t, "a.txt.enc", encHeader.Filename)

		_, metaHeader, err := r.FormFile(models.FieldMetaFile)
		require.NoError(t, err)
		assert.Equal(t, "a.txt.enc.meta", metaHeader.Filename)
	})

	payload := models.NewFormPayload()
	payload.Set(models.FieldUseMetadata, "true")
	payload.SetFile(models.FieldEncryptedFile, enc)
	payload.SetFile(models.FieldMetaFile, meta)

	res, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "a.txt", res.DecryptedFile)
}

func TestDecrypt_EmptyErrorUsesStatusText(t *testing.T) {
	srv := jsonServer(t, http.StatusBadRequest, `{"success":false}`, nil)

	_, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), models.NewFormPayload())

	require.ErrorIs(t, err, ErrServerReported)
	assert.Equal(t, "Bad Request", err.Error())
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestDownload_WritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download/my file.enc", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.WriteString(w, "cipher bytes")
	}))
	t.Cleanup(srv.Close)

	dir := filepath.Join(t.TempDir(), "downloads")
	path, err := newTestAdapter(t, srv.URL).Download(context.Background(), "my file.enc", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my file.enc"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cipher bytes", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestDownload_NotFound(t *testing.T) {
	srv := jsonServer(t, http.StatusNotFound, `{"success":false,"error":"File not found"}`, nil)
	dir := t.TempDir()

	_, err := newTestAdapter(t, srv.URL).Download(context.Background(), "gone.enc", dir)

	require.ErrorIs(t, err, ErrServerReported)
	assert.Equal(t, "File not found", err.Error())

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestDownload_InvalidName(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")

	for _, name := range []string{"", "..", "/"} {
		_, err := a.Download(context.Background(), name, t.TempDir())
		assert.ErrorIs(t, err, ErrInvalidFileName, "name %q", name)
	}
}

func TestLocalName_StripsDirectories(t *testing.T) {
	got, err := localName(`..\..\evil.txt`)
	require.NoError(t, err)
	assert.Equal(t, "evil.txt", got)
}

// ── ServerInfo ───────────────────────────────────────────────────────────────

func TestServerInfo(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"success":true,"version":"1.4.0","mode":"password"}`, func(r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
	})

	info, err := newTestAdapter(t, srv.URL).ServerInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ServerInfo{Version: "1.4.0", Mode: models.ModePassword}, info)
}
