package models

// FileMetadata is the sidecar written next to every encrypted file as
// "<output>.meta". Only the fields of the active mode are populated.
type FileMetadata struct {
	InputFile  string `json:"input_file"`
	OutputFile string `json:"output_file"`

	// key mode
	KeyHex    string `json:"key_hex,omitempty"`
	KeyBase64 string `json:"key_base64,omitempty"`

	// password mode
	Salt     string `json:"salt,omitempty"`
	Password string `json:"password,omitempty"`

	// Nonce is base64 encoded in both modes.
	Nonce string `json:"nonce"`
}
