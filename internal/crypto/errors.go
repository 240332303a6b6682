package crypto

import "errors"

var (
	// ErrInvalidKeyFormat is returned when a key is neither 64 hex characters
	// nor valid base64.
	ErrInvalidKeyFormat = errors.New("Invalid key format. Please provide a valid hex or base64 key")
	// ErrInvalidKeyLength is returned when a decoded key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("Key must be 256 bits (32 bytes)")
	// ErrEmptyPassword is returned when a password cipher gets no password.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrCiphertextTooShort is returned when a blob is shorter than its header.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrInvalidParams is returned when sidecar nonce or salt cannot be decoded.
	ErrInvalidParams = errors.New("invalid cipher parameters")
	// ErrAuthenticationFailed is returned when GCM authentication fails,
	// usually because of a wrong key or password.
	ErrAuthenticationFailed = errors.New("message authentication failed")
	// ErrUnknownMode is returned by NewFileCipher for an unsupported mode.
	ErrUnknownMode = errors.New("unknown crypt mode")
)
