package view

import (
	"github.com/MKhiriev/go-file-crypt/models"
)

const (
	endpointEncrypt = "/encrypt"
	endpointDecrypt = "/decrypt"
)

// Form is one of the three submission forms. Text fields and file paths
// are kept apart, the way a multipart body separates them.
type Form struct {
	ID       string
	Endpoint string
	// ResultID names the panel the outcome is rendered into.
	ResultID string
	Submit   *Button
	Hidden   bool

	values     map[string]string
	files      map[string]string
	submitting bool
}

func newForm(id, endpoint, resultID, submitLabel string) *Form {
	return &Form{
		ID:       id,
		Endpoint: endpoint,
		ResultID: resultID,
		Submit:   NewButton(id+"Submit", submitLabel),
		values:   make(map[string]string),
		files:    make(map[string]string),
	}
}

func (f *Form) Set(name, value string)    { f.values[name] = value }
func (f *Form) SetFile(name, path string) { f.files[name] = path }
func (f *Form) Value(name string) string  { return f.values[name] }
func (f *Form) File(name string) string   { return f.files[name] }

// Submitting reports whether an exchange for this form is in flight.
func (f *Form) Submitting() bool { return f.submitting }

func (f *Form) payload() models.FormPayload {
	p := models.NewFormPayload()
	for name, value := range f.values {
		p.Set(name, value)
	}
	for name, path := range f.files {
		if path != "" {
			p.SetFile(name, path)
		}
	}
	return p
}

// Page holds every binding of the front end. Key bindings are nil in the
// password variant.
type Page struct {
	Mode models.Mode
	Tabs *Tabs

	GenerateKeyBtn *Button
	KeyHex         *Field
	KeyBase64      *Field
	KeyDisplay     *Element
	CustomKey      *Field
	UseCustomKey   *Checkbox
	CustomKeyInput *Element

	// Manual is the "enter key/password" radio of the decrypt panel.
	Manual *Checkbox

	Forms   map[string]*Form
	Results map[string]*ResultPanel

	// Toast is the transient notice, empty when none is shown.
	Toast string
}

// NewPage builds the bindings of the page served for mode.
func NewPage(mode models.Mode) *Page {
	p := &Page{
		Mode:   mode,
		Tabs:   NewTabs(TabEncrypt, TabDecrypt),
		Manual: &Checkbox{ID: IDManual, Checked: true},
		Forms: map[string]*Form{
			IDEncryptForm:       newForm(IDEncryptForm, endpointEncrypt, IDEncryptResult, "🔒 Encrypt File"),
			IDDecryptManualForm: newForm(IDDecryptManualForm, endpointDecrypt, IDDecryptResult, "🔓 Decrypt File"),
			IDDecryptMetaForm:   newForm(IDDecryptMetaForm, endpointDecrypt, IDDecryptResult, "🔓 Decrypt with Metadata"),
		},
		Results: map[string]*ResultPanel{
			IDEncryptResult: {ID: IDEncryptResult, Hidden: true},
			IDDecryptResult: {ID: IDDecryptResult, Hidden: true},
		},
	}

	p.Forms[IDDecryptManualForm].Set(models.FieldUseMetadata, "false")
	p.Forms[IDDecryptMetaForm].Set(models.FieldUseMetadata, "true")
	p.Forms[IDDecryptMetaForm].Hidden = true

	if mode == models.ModeKey {
		p.GenerateKeyBtn = NewButton(IDGenerateKeyBtn, "🎲 Generate Random Key")
		p.KeyHex = &Field{ID: IDKeyHexDisplay}
		p.KeyBase64 = &Field{ID: IDKeyBase64Display}
		p.KeyDisplay = &Element{ID: IDKeyDisplay, Hidden: true}
		p.CustomKey = &Field{ID: IDCustomKey}
		p.UseCustomKey = &Checkbox{ID: IDUseCustomKey}
		p.CustomKeyInput = &Element{ID: IDCustomKeyInput, Hidden: true}
	}

	return p
}

// Form returns the form with the given id or nil.
func (p *Page) Form(id string) *Form { return p.Forms[id] }

// Result returns the result panel with the given id or nil.
func (p *Page) Result(id string) *ResultPanel { return p.Results[id] }

// DecryptForm returns the decrypt form currently shown.
func (p *Page) DecryptForm() *Form {
	if p.Manual.Checked {
		return p.Forms[IDDecryptManualForm]
	}
	return p.Forms[IDDecryptMetaForm]
}
