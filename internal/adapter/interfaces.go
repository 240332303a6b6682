// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side transport to the file-crypt
// server.
//
// [ServerAdapter] decouples the terminal front end from HTTP. The package
// ships a resty based implementation ([NewHTTPServerAdapter]).
//
// Failures come in two kinds, matching what the user is shown: an
// [*EnvelopeError] when the server answered {"success":false,"error":...}
// and a [*NetworkError] when no usable answer arrived (unreachable server,
// timeout, malformed JSON). Use [errors.Is] with [ErrServerReported] or
// [ErrNetwork] to tell them apart.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-file-crypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the exchanges of the front end with the server.
type ServerAdapter interface {
	// GenerateKey requests a fresh key from GET /generate_key.
	GenerateKey(ctx context.Context) (models.GeneratedKey, error)

	// Encrypt submits payload as a multipart form to POST /encrypt. File
	// fields hold local paths which are uploaded.
	Encrypt(ctx context.Context, payload models.FormPayload) (models.EncryptResult, error)

	// Decrypt submits payload as a multipart form to POST /decrypt.
	Decrypt(ctx context.Context, payload models.FormPayload) (models.DecryptResult, error)

	// Download fetches /download/{name} into dir and returns the path of
	// the written file.
	Download(ctx context.Context, name, dir string) (string, error)

	// ServerInfo reads the server version and crypt mode.
	ServerInfo(ctx context.Context) (models.ServerInfo, error)
}
