package view

import "time"

// User facing texts.
const (
	LabelProcessing = "Processing..."
	LabelCopied     = "✓ Copied!"

	ToastKeyGenerated = "✓ Key Generated Successfully!"

	AlertCopyFailed       = "Failed to copy to clipboard"
	AlertMissingElements  = "ERROR: Could not find display elements! Check HTML."
	alertKeyServerPrefix  = "Error generating key: "
	alertKeyNetworkPrefix = "Network error: "

	PrefixServerError  = "Error"
	PrefixNetworkError = "Network Error"

	TitleEncrypted = "✅ Encryption Successful!"
	TitleDecrypted = "✅ Decryption Successful!"

	WarningSaveKey      = "⚠️ SAVE THIS KEY! You need this key to decrypt your file. It's also in the metadata file."
	WarningKeepPassword = "⚠️ Keep your password safe! You'll need it for decryption."
)

// How long transient feedback stays on screen.
const (
	CopiedFeedbackDuration = 2 * time.Second
	ToastDuration          = 3 * time.Second
)
