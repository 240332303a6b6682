package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-file-crypt/internal/config"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/utils"
	"github.com/MKhiriev/go-file-crypt/models"
)

// maxErrorBody bounds how much of a failed download is read for its envelope.
const maxErrorBody = 64 << 10

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress. A missing scheme
// defaults to http. Every exchange is bounded by cfg.RequestTimeout.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if err := validateBaseURL(cfg.HTTPAddress); err != nil {
		return nil, err
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func validateBaseURL(raw string) error {
	base := utils.NormalizeBaseURL(raw)
	if base == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: address must include a host", ErrInvalidAddress)
	}

	return nil
}

func (h *httpServerAdapter) GenerateKey(ctx context.Context) (models.GeneratedKey, error) {
	const op = "generate key"

	resp, err := h.client.R().SetContext(ctx).Get("/generate_key")
	if err != nil {
		return models.GeneratedKey{}, &NetworkError{Op: op, Err: err}
	}

	var body models.GenerateKeyResponse
	if err = decodeEnvelope(op, resp, &body); err != nil {
		return models.GeneratedKey{}, err
	}

	return body.GeneratedKey, nil
}

func (h *httpServerAdapter) Encrypt(ctx context.Context, payload models.FormPayload) (models.EncryptResult, error) {
	var body models.EncryptResponse
	if err := h.submit(ctx, "encrypt", "/encrypt", payload, &body); err != nil {
		return models.EncryptResult{}, err
	}

	return body.EncryptResult, nil
}

func (h *httpServerAdapter) Decrypt(ctx context.Context, payload models.FormPayload) (models.DecryptResult, error) {
	var body models.DecryptResponse
	if err := h.submit(ctx, "decrypt", "/decrypt", payload, &body); err != nil {
		return models.DecryptResult{}, err
	}

	return body.DecryptResult, nil
}

// submit posts payload as multipart/form-data and decodes the envelope.
func (h *httpServerAdapter) submit(ctx context.Context, op, endpoint string, payload models.FormPayload, out any) error {
	req := h.client.R().SetContext(ctx).SetMultipartFormData(payload.Values)

	// stable part order
	fields := make([]string, 0, len(payload.Files))
	for field, filePath := range payload.Files {
		if filePath != "" {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	for _, field := range fields {
		filePath := payload.Files[field]
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", filePath, err)
		}
		defer f.Close()

		req.SetMultipartField(field, filepath.Base(filePath), "application/octet-stream", f)
	}

	h.logger.Debug().Str("op", op).Strs("files", fields).Msg("submitting form")

	resp, err := req.Post(endpoint)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return decodeEnvelope(op, resp, out)
}

func (h *httpServerAdapter) Download(ctx context.Context, name, dir string) (string, error) {
	const op = "download"

	fileName, err := localName(name)
	if err != nil {
		return "", err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/download/" + url.PathEscape(name))
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

		var env models.Envelope
		if json.Unmarshal(data, &env) == nil {
			return "", envelopeError(resp.StatusCode(), env.Error)
		}
		return "", envelopeError(resp.StatusCode(), "")
	}

	target := filepath.Join(dir, fileName)
	if err := writeAtomically(target, body); err != nil {
		if ctx.Err() != nil {
			return "", &NetworkError{Op: op, Err: err}
		}
		return "", err
	}

	h.logger.Info().Str("file", target).Msg("file downloaded")
	return target, nil
}

func (h *httpServerAdapter) ServerInfo(ctx context.Context) (models.ServerInfo, error) {
	const op = "server info"

	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.ServerInfo{}, &NetworkError{Op: op, Err: err}
	}

	var body models.VersionResponse
	if err = decodeEnvelope(op, resp, &body); err != nil {
		return models.ServerInfo{}, err
	}

	return body.ServerInfo, nil
}

// localName keeps only the last path element of a server supplied name.
func localName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return base, nil
}

// writeAtomically streams r into a temporary file next to target and
// renames it into place, so a failed download never leaves a partial file.
func writeAtomically(target string, r io.Reader) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+uuid.NewString()+".part")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", target, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", target, err)
	}

	if err = os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error moving %s into place: %w", target, err)
	}

	return nil
}
