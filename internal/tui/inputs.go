package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-file-crypt/internal/view"
	"github.com/MKhiriev/go-file-crypt/models"
)

const inputWidth = 50

// boundInput is a text input tied to one value of the page.
type boundInput struct {
	label string
	tab   string
	input textinput.Model

	// visible reports whether the input is on screen for the page state.
	visible func(p *view.Page) bool
	// apply stores the input value into the page.
	apply func(p *view.Page, value string)
	// load returns the page value, for inputs the controller may change.
	load func(p *view.Page) string
}

func newTextInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	in.Prompt = ""
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func formValue(formID, field string) func(p *view.Page, value string) {
	return func(p *view.Page, value string) { p.Form(formID).Set(field, value) }
}

func formFile(formID, field string) func(p *view.Page, value string) {
	return func(p *view.Page, value string) { p.Form(formID).SetFile(field, value) }
}

func always(*view.Page) bool { return true }

func manualOnly(p *view.Page) bool { return p.Manual.Checked }

func metadataOnly(p *view.Page) bool { return !p.Manual.Checked }

func bind(tab, label string, in textinput.Model, visible func(*view.Page) bool, apply func(*view.Page, string)) boundInput {
	return boundInput{label: label, tab: tab, input: in, visible: visible, apply: apply}
}

// newInputs lays out the inputs of both panels for mode.
func newInputs(mode models.Mode) []boundInput {
	secretField, secretLabel := models.FieldPassword, "Password"
	if mode == models.ModeKey {
		secretField, secretLabel = models.FieldKey, "Key"
	}

	inputs := []boundInput{
		bind(view.TabEncrypt, "File", newTextInput("path to the file to encrypt", false),
			always, formFile(view.IDEncryptForm, models.FieldFile)),
		bind(view.TabEncrypt, "Output name", newTextInput("defaults to <file>.enc", false),
			always, formValue(view.IDEncryptForm, models.FieldOutputName)),
	}

	if mode == models.ModeKey {
		custom := bind(view.TabEncrypt, "Custom key", newTextInput("64 hex characters or base64 of 32 bytes", false),
			func(p *view.Page) bool { return p.CustomKeyInput != nil && !p.CustomKeyInput.Hidden },
			func(p *view.Page, value string) { p.CustomKey.Value = value })
		custom.load = func(p *view.Page) string { return p.CustomKey.Value }
		inputs = append(inputs, custom)
	} else {
		inputs = append(inputs, bind(view.TabEncrypt, "Password", newTextInput("", true),
			always, formValue(view.IDEncryptForm, models.FieldPassword)))
	}

	return append(inputs,
		bind(view.TabDecrypt, "Encrypted file", newTextInput("path to the .enc file", false),
			manualOnly, formFile(view.IDDecryptManualForm, models.FieldEncryptedFile)),
		bind(view.TabDecrypt, secretLabel, newTextInput("", mode == models.ModePassword),
			manualOnly, formValue(view.IDDecryptManualForm, secretField)),
		bind(view.TabDecrypt, "Output name", newTextInput("optional", false),
			manualOnly, formValue(view.IDDecryptManualForm, models.FieldOutputName)),
		bind(view.TabDecrypt, "Encrypted file", newTextInput("path to the .enc file", false),
			metadataOnly, formFile(view.IDDecryptMetaForm, models.FieldEncryptedFile)),
		bind(view.TabDecrypt, "Metadata file", newTextInput("path to the .meta file", false),
			metadataOnly, formFile(view.IDDecryptMetaForm, models.FieldMetaFile)),
		bind(view.TabDecrypt, "Output name", newTextInput("optional", false),
			metadataOnly, formValue(view.IDDecryptMetaForm, models.FieldOutputName)),
	)
}
