package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButton_SetLoading(t *testing.T) {
	b := NewButton("b", "Encrypt")

	b.SetLoading(true)
	assert.True(t, b.Disabled)
	assert.Equal(t, LabelProcessing, b.Label)

	// a second call keeps the original label
	b.SetLoading(true)

	b.SetLoading(false)
	assert.False(t, b.Disabled)
	assert.Equal(t, "Encrypt", b.Label)
}

func TestButton_FlashRestore(t *testing.T) {
	b := NewButton("b", "📋 Copy")

	first := b.Flash(LabelCopied)
	second := b.Flash(LabelCopied)
	assert.Equal(t, LabelCopied, b.Label)

	// the earlier timer must not cut the later flash short
	b.Restore(first)
	assert.Equal(t, LabelCopied, b.Label)

	b.Restore(second)
	assert.Equal(t, "📋 Copy", b.Label)
}

func TestResultPanel_ErrorReplacesSuccess(t *testing.T) {
	p := &ResultPanel{ID: IDEncryptResult}
	p.showDecrypted(modelsDecrypt("a.txt"))
	p.showError(PrefixServerError, "bad file")

	assert.Equal(t, "Error: bad file", p.Text())
	assert.Empty(t, p.Lines)
	assert.Empty(t, p.Links)
	assert.Equal(t, IDEncryptResult, p.ID)
}

func TestLink_Href(t *testing.T) {
	assert.Equal(t, "/download/my%20file.enc", Link{Name: "my file.enc"}.Href())
}
