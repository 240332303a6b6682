package view

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-file-crypt/internal/adapter"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/models"
)

// Backend performs the exchanges with the server.
type Backend interface {
	GenerateKey(ctx context.Context) (models.GeneratedKey, error)
	Encrypt(ctx context.Context, payload models.FormPayload) (models.EncryptResult, error)
	Decrypt(ctx context.Context, payload models.FormPayload) (models.DecryptResult, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// SubmitOutcome is the settled result of a form exchange. Exactly one of
// Encrypted, Decrypted and Err is set.
type SubmitOutcome struct {
	Encrypted *models.EncryptResult
	Decrypted *models.DecryptResult
	Err       error
}

// Controller runs the front end flows against a [Page]. Its methods other
// than GenerateKey and Submit must be called from a single goroutine.
type Controller struct {
	page      *Page
	backend   Backend
	clipboard Clipboard
	alerter   Alerter
	timeout   time.Duration

	logger *logger.Logger
}

// NewController binds the flows to page. A positive timeout bounds every
// exchange with the server.
func NewController(page *Page, backend Backend, clipboard Clipboard, alerter Alerter, timeout time.Duration, logger *logger.Logger) *Controller {
	return &Controller{
		page:      page,
		backend:   backend,
		clipboard: clipboard,
		alerter:   alerter,
		timeout:   timeout,
		logger:    logger,
	}
}

// Page returns the bound page.
func (c *Controller) Page() *Page {
	return c.page
}

// OpenTab switches to the named panel and hides both result panels.
func (c *Controller) OpenTab(name string) {
	if !c.page.Tabs.Open(name) {
		return
	}
	for _, result := range c.page.Results {
		result.Hide()
	}
}

// ToggleCustomKey shows the custom key input when checked and hides the
// generated key display.
func (c *Controller) ToggleCustomKey(checked bool) {
	p := c.page
	if p.UseCustomKey == nil || p.CustomKeyInput == nil {
		return
	}

	p.UseCustomKey.Checked = checked
	p.CustomKeyInput.Hidden = !checked
	if checked && p.KeyDisplay != nil {
		p.KeyDisplay.Hide()
	}
}

// ToggleDecryptMethod shows exactly one of the two decrypt forms.
func (c *Controller) ToggleDecryptMethod(manual bool) {
	c.page.Manual.Checked = manual
	c.page.Forms[IDDecryptManualForm].Hidden = !manual
	c.page.Forms[IDDecryptMetaForm].Hidden = manual
}

// BeginGenerateKey disables the generate button. It reports false when
// there is no button or a generation is already running.
func (c *Controller) BeginGenerateKey() bool {
	btn := c.page.GenerateKeyBtn
	if btn == nil || btn.Disabled {
		return false
	}
	btn.SetLoading(true)
	return true
}

// GenerateKey asks the server for a key. It touches no view state and may
// run on any goroutine.
func (c *Controller) GenerateKey(ctx context.Context) (models.GeneratedKey, error) {
	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	return c.backend.GenerateKey(ctx)
}

// FinishGenerateKey applies the outcome of GenerateKey and re-enables the
// button. It reports whether the success toast was raised.
func (c *Controller) FinishGenerateKey(key models.GeneratedKey, err error) bool {
	p := c.page
	if p.GenerateKeyBtn != nil {
		defer p.GenerateKeyBtn.SetLoading(false)
	}

	if err != nil {
		if message, ok := serverMessage(err); ok {
			c.alerter.Alert(alertKeyServerPrefix + message)
		} else {
			c.alerter.Alert(alertKeyNetworkPrefix + err.Error())
		}
		c.logger.Warn().Err(err).Msg("key generation failed")
		return false
	}

	if p.KeyHex == nil || p.KeyBase64 == nil || p.KeyDisplay == nil {
		c.alerter.Alert(AlertMissingElements)
		return false
	}

	p.KeyHex.Value = key.KeyHex
	p.KeyBase64.Value = key.KeyBase64
	p.KeyDisplay.Show()

	if p.CustomKey != nil {
		p.CustomKey.Value = key.KeyHex
	}
	if p.UseCustomKey != nil {
		p.UseCustomKey.Checked = false
	}
	if p.CustomKeyInput != nil {
		p.CustomKeyInput.Hide()
	}

	p.Toast = ToastKeyGenerated
	return true
}

// ClearToast removes the transient notice.
func (c *Controller) ClearToast() {
	c.page.Toast = ""
}

// BeginSubmit moves the form from idle to submitting and returns the
// payload to send. It reports false, changing nothing, for an unknown form
// or one that is already submitting.
func (c *Controller) BeginSubmit(formID string) (models.FormPayload, bool) {
	form := c.page.Form(formID)
	if form == nil || form.submitting {
		return models.FormPayload{}, false
	}

	payload := form.payload()
	if form.ID == IDEncryptForm && c.page.Mode == models.ModeKey {
		c.chooseKey(payload)
	}

	form.submitting = true
	form.Submit.SetLoading(true)
	if result := c.page.Result(form.ResultID); result != nil {
		result.Hide()
	}

	return payload, true
}

// chooseKey sets the key field from the custom input or the generated key
// and drops it when both are empty.
func (c *Controller) chooseKey(payload models.FormPayload) {
	p := c.page

	var value string
	switch {
	case p.UseCustomKey != nil && p.UseCustomKey.Checked && p.CustomKey != nil:
		value = strings.TrimSpace(p.CustomKey.Value)
	case p.KeyHex != nil:
		value = p.KeyHex.Value
	}

	if value == "" {
		payload.Delete(models.FieldKey)
		return
	}
	payload.Set(models.FieldKey, value)
}

// Submit posts payload to the endpoint of the form. It touches no view
// state and may run on any goroutine.
func (c *Controller) Submit(ctx context.Context, formID string, payload models.FormPayload) SubmitOutcome {
	form := c.page.Form(formID)
	if form == nil {
		return SubmitOutcome{Err: ErrUnknownForm}
	}

	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	c.logger.Debug().Str("form", formID).Str("endpoint", form.Endpoint).Msg("submitting form")

	if form.Endpoint == endpointEncrypt {
		res, err := c.backend.Encrypt(ctx, payload)
		if err != nil {
			return SubmitOutcome{Err: err}
		}
		return SubmitOutcome{Encrypted: &res}
	}

	res, err := c.backend.Decrypt(ctx, payload)
	if err != nil {
		return SubmitOutcome{Err: err}
	}
	return SubmitOutcome{Decrypted: &res}
}

// FinishSubmit renders the outcome and returns the form to idle.
func (c *Controller) FinishSubmit(formID string, outcome SubmitOutcome) {
	form := c.page.Form(formID)
	if form == nil {
		return
	}
	defer func() {
		form.submitting = false
		form.Submit.SetLoading(false)
	}()

	result := c.page.Result(form.ResultID)
	if result == nil {
		return
	}

	switch {
	case outcome.Err != nil:
		if message, ok := serverMessage(outcome.Err); ok {
			result.showError(PrefixServerError, message)
		} else {
			result.showError(PrefixNetworkError, outcome.Err.Error())
		}
		c.logger.Warn().Err(outcome.Err).Str("form", formID).Msg("form submission failed")
	case outcome.Encrypted != nil:
		result.showEncrypted(*outcome.Encrypted, c.page.Mode)
	case outcome.Decrypted != nil:
		result.showDecrypted(*outcome.Decrypted)
	}
}

// Copy writes text to the clipboard and flashes btn. The returned token is
// passed to RevertCopy once [CopiedFeedbackDuration] has passed.
func (c *Controller) Copy(text string, btn *Button) (int, bool) {
	if err := c.clipboard.WriteAll(text); err != nil {
		c.logger.Warn().Err(err).Msg("clipboard write failed")
		c.alerter.Alert(AlertCopyFailed)
		return 0, false
	}
	return btn.Flash(LabelCopied), true
}

// RevertCopy restores the label replaced by Copy.
func (c *Controller) RevertCopy(btn *Button, token int) {
	btn.Restore(token)
}

func (c *Controller) exchangeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

// serverMessage returns the server string of an error envelope.
func serverMessage(err error) (string, bool) {
	var envErr *adapter.EnvelopeError
	if errors.As(err, &envErr) {
		return envErr.Message, true
	}
	return "", false
}
