package view

// Element identifiers shared with the embedded web page.
const (
	IDGenerateKeyBtn    = "generateKeyBtn"
	IDEncryptForm       = "encryptForm"
	IDDecryptManualForm = "decryptManualForm"
	IDDecryptMetaForm   = "decryptMetaForm"
	IDKeyHexDisplay     = "keyHexDisplay"
	IDKeyBase64Display  = "keyBase64Display"
	IDCustomKey         = "customKey"
	IDUseCustomKey      = "useCustomKey"
	IDCustomKeyInput    = "customKeyInput"
	IDKeyDisplay        = "keyDisplay"
	IDEncryptResult     = "encryptResult"
	IDDecryptResult     = "decryptResult"
	IDManual            = "manual"

	ClassTabContent = "tabcontent"
	ClassTabLinks   = "tablinks"
)

// Panel names.
const (
	TabEncrypt = "Encrypt"
	TabDecrypt = "Decrypt"
)

// Element is a container that can be shown or hidden.
type Element struct {
	ID     string
	Hidden bool
}

func (e *Element) Show() { e.Hidden = false }
func (e *Element) Hide() { e.Hidden = true }

// Field is a single line text input.
type Field struct {
	ID    string
	Value string
}

// Checkbox is a boolean input. Radio buttons are modeled as checkboxes.
type Checkbox struct {
	ID      string
	Checked bool
}

// Button is a clickable control with a label.
//
// SetLoading and Flash remember the label they replace, so nested use
// (a flash while loading, two flashes in a row) always restores the
// label the user saw first.
type Button struct {
	ID       string
	Label    string
	Disabled bool

	loadingLabel string
	loading      bool

	flashLabel string
	flashing   bool
	flashToken int
}

// NewButton returns an enabled button.
func NewButton(id, label string) *Button {
	return &Button{ID: id, Label: label}
}

// SetLoading disables the button and shows [LabelProcessing], or undoes it.
func (b *Button) SetLoading(loading bool) {
	if loading {
		if !b.loading {
			b.loadingLabel = b.Label
			b.loading = true
		}
		b.Disabled = true
		b.Label = LabelProcessing
		return
	}

	b.Disabled = false
	if b.loading {
		b.Label = b.loadingLabel
		b.loading = false
	}
}

// Flash replaces the label until Restore is called with the returned token.
func (b *Button) Flash(label string) int {
	if !b.flashing {
		b.flashLabel = b.Label
		b.flashing = true
	}
	b.Label = label
	b.flashToken++
	return b.flashToken
}

// Restore reverts the label set by the Flash call that returned token.
// Stale tokens from an earlier flash are ignored.
func (b *Button) Restore(token int) {
	if !b.flashing || token != b.flashToken {
		return
	}
	b.Label = b.flashLabel
	b.flashing = false
}
