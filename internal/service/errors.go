package service

import "errors"

// User facing errors. Their text is sent verbatim in the error envelope.
var (
	ErrNoFileSelected           = errors.New("No file selected")
	ErrNoMetadataFileSelected   = errors.New("No metadata file selected")
	ErrNoEncryptedFileSelected  = errors.New("No encrypted file selected")
	ErrKeyRequired              = errors.New("Encryption key is required")
	ErrPasswordRequired         = errors.New("Password is required")
	ErrMetadataHasNoKey         = errors.New("Metadata file does not contain encryption key")
	ErrMetadataHasNoPassword    = errors.New("Metadata file does not contain password")
	ErrInvalidMetadata          = errors.New("Invalid metadata file")
	ErrDecryptionFailed         = errors.New("Decryption failed. Please check your key and try again.")
	ErrDecryptionFailedPassword = errors.New("Decryption failed. Please check your files and try again.")
	ErrFileNotFound             = errors.New("File not found")
	ErrFileTooLarge             = errors.New("File too large")
	ErrKeyGenerationUnsupported = errors.New("Key generation is not available in password mode")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilDependency         = errors.New("nil dependency")
)
