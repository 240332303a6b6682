// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the common part of every JSON body returned by the crypt
// endpoints. Success is false exactly when Error is set.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// GeneratedKey is a freshly generated 256-bit key in both text encodings.
type GeneratedKey struct {
	KeyHex    string `json:"key_hex"`
	KeyBase64 string `json:"key_base64"`
}

// EncryptResult describes the files produced by one encryption.
type EncryptResult struct {
	EncryptedFile string       `json:"encrypted_file"`
	MetadataFile  string       `json:"metadata_file"`
	Metadata      FileMetadata `json:"metadata"`
}

// DecryptResult names the file produced by one decryption.
type DecryptResult struct {
	DecryptedFile string `json:"decrypted_file"`
}

// GenerateKeyResponse is the body of GET /generate_key.
type GenerateKeyResponse struct {
	Envelope
	GeneratedKey
}

// EncryptResponse is the body of POST /encrypt.
type EncryptResponse struct {
	Envelope
	EncryptResult
}

// DecryptResponse is the body of POST /decrypt.
type DecryptResponse struct {
	Envelope
	DecryptResult
}

// ServerInfo describes the running server.
type ServerInfo struct {
	Version string `json:"version"`
	Mode    Mode   `json:"mode"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Envelope
	ServerInfo
}
