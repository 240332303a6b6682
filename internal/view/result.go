package view

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-file-crypt/models"
)

// Link points at a produced file on the server.
type Link struct {
	Label string
	Name  string
}

// Href is the download path of the file.
func (l Link) Href() string {
	return "/download/" + url.PathEscape(l.Name)
}

// ResultPanel is the encryptResult or decryptResult container. Each render
// replaces the whole content.
type ResultPanel struct {
	ID     string
	Hidden bool

	Success bool
	Title   string
	// Message is the error text of a failed exchange.
	Message string
	Lines   []string
	Key     *models.GeneratedKey
	Warning string
	Links   []Link
}

func (p *ResultPanel) reset() {
	*p = ResultPanel{ID: p.ID, Hidden: p.Hidden}
}

// Hide hides the panel and keeps its content.
func (p *ResultPanel) Hide() { p.Hidden = true }

func (p *ResultPanel) showError(prefix, message string) {
	p.reset()
	p.Title = prefix
	p.Message = message
	p.Hidden = false
}

func (p *ResultPanel) showEncrypted(res models.EncryptResult, mode models.Mode) {
	p.reset()
	p.Success = true
	p.Title = TitleEncrypted
	p.Lines = []string{
		"Encrypted file: " + res.EncryptedFile,
		"Metadata file: " + res.MetadataFile,
	}

	if mode == models.ModeKey {
		p.Key = &models.GeneratedKey{KeyHex: res.Metadata.KeyHex, KeyBase64: res.Metadata.KeyBase64}
		p.Warning = WarningSaveKey
	} else {
		p.Warning = WarningKeepPassword
	}

	p.Links = []Link{
		{Label: "Download Encrypted File", Name: res.EncryptedFile},
		{Label: "Download Metadata", Name: res.MetadataFile},
	}
	p.Hidden = false
}

func (p *ResultPanel) showDecrypted(res models.DecryptResult) {
	p.reset()
	p.Success = true
	p.Title = TitleDecrypted
	p.Lines = []string{"Decrypted file: " + res.DecryptedFile}
	p.Links = []Link{{Label: "Download Decrypted File", Name: res.DecryptedFile}}
	p.Hidden = false
}

// Text renders the panel as plain text. An error panel reads
// "<prefix>: <message>".
func (p *ResultPanel) Text() string {
	if p.Hidden {
		return ""
	}
	if !p.Success {
		return p.Title + ": " + p.Message
	}

	var b strings.Builder
	b.WriteString(p.Title)
	for _, line := range p.Lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	if p.Key != nil {
		b.WriteString("\n\n🔑 Your Encryption Key:\nHex: ")
		b.WriteString(p.Key.KeyHex)
		b.WriteString("\nBase64: ")
		b.WriteString(p.Key.KeyBase64)
	}
	if p.Warning != "" {
		b.WriteString("\n\n")
		b.WriteString(p.Warning)
	}
	for _, link := range p.Links {
		b.WriteString("\n📥 ")
		b.WriteString(link.Label)
		b.WriteString(": ")
		b.WriteString(link.Href())
	}
	return b.String()
}
