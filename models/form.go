package models

// Wire names of the multipart form fields accepted by /encrypt and /decrypt.
const (
	FieldFile          = "file"
	FieldOutputName    = "output_name"
	FieldKey           = "key"
	FieldPassword      = "password"
	FieldEncryptedFile = "encrypted_file"
	FieldMetaFile      = "meta_file"
	FieldUseMetadata   = "use_metadata"
)

// FormPayload is the flat field name -> value mapping sent with a form
// submission. Values holds text fields, Files maps a field name to a local
// file path that is uploaded as a multipart part.
type FormPayload struct {
	Values map[string]string
	Files  map[string]string
}

// NewFormPayload returns an empty payload ready for use.
func NewFormPayload() FormPayload {
	return FormPayload{
		Values: make(map[string]string),
		Files:  make(map[string]string),
	}
}

// Set stores a text field.
func (p FormPayload) Set(name, value string) {
	p.Values[name] = value
}

// SetFile stores a file field.
func (p FormPayload) SetFile(name, path string) {
	p.Files[name] = path
}

// Delete removes a text field so that it is not sent at all.
func (p FormPayload) Delete(name string) {
	delete(p.Values, name)
}

// Get returns the text field and whether it is present.
func (p FormPayload) Get(name string) (string, bool) {
	v, ok := p.Values[name]
	return v, ok
}

// UploadedFile is a file received by the server in a multipart form.
type UploadedFile struct {
	Name string
	Data []byte
}

// EncryptRequest is a parsed /encrypt submission.
type EncryptRequest struct {
	File       UploadedFile
	OutputName string
	// Secret is the key (key mode) or the password (password mode).
	Secret string
}

// DecryptRequest is a parsed /decrypt submission. Metadata is non-nil when
// the caller chose to decrypt with a sidecar file.
type DecryptRequest struct {
	EncryptedFile UploadedFile
	Metadata      *FileMetadata
	Secret        string
	OutputName    string
}
