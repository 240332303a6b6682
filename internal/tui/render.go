package tui

import (
	"strings"

	"github.com/MKhiriev/go-file-crypt/internal/view"
	"github.com/MKhiriev/go-file-crypt/models"
)

func (m model) View() string {
	if msg, ok := m.alerts.current(); ok {
		return appStyle.Render(renderAlert(msg))
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	if m.currentTab() == view.TabEncrypt {
		b.WriteString(m.renderEncrypt())
	} else {
		b.WriteString(m.renderDecrypt())
	}

	if m.page.Toast != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(m.page.Toast))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return appStyle.Render(renderPage("FILE ENCRYPTION ("+string(m.page.Mode)+" mode)", b.String(), m.hotKeys()))
}

func (m model) renderTabBar() string {
	parts := make([]string, 0, 2)
	for i, link := range m.page.Tabs.Links() {
		label := "F" + string(rune('1'+i)) + " " + link.Target
		if link.Active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m model) renderInputs() string {
	var b strings.Builder
	focused := m.focused()
	for _, i := range m.visibleInputs() {
		in := m.inputs[i]
		label := in.label + ":"
		if i == focused {
			label = focusedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" [")
		b.WriteString(in.input.View())
		b.WriteString("]\n")
	}
	return b.String()
}

func (m model) renderEncrypt() string {
	var b strings.Builder
	p := m.page

	if p.Mode == models.ModeKey {
		b.WriteString(buttonLabel(p.GenerateKeyBtn))
		b.WriteString("\n")
		if !p.KeyDisplay.Hidden {
			b.WriteString("Hex:    " + p.KeyHex.Value + "  " + m.copyHexBtn.Label + "\n")
			b.WriteString("Base64: " + p.KeyBase64.Value + "  " + m.copyBase64Btn.Label + "\n")
		}
		b.WriteString(checkbox(p.UseCustomKey.Checked) + " Use my own key\n\n")
	}

	b.WriteString(m.renderInputs())
	b.WriteString("\n")
	b.WriteString(buttonLabel(p.Form(view.IDEncryptForm).Submit))
	b.WriteString(renderResult(p.Result(view.IDEncryptResult), m.copyHexBtn, m.copyBase64Btn))
	return b.String()
}

func (m model) renderDecrypt() string {
	var b strings.Builder
	p := m.page

	secret := "Enter password"
	if p.Mode == models.ModeKey {
		secret = "Enter key"
	}
	b.WriteString(radio(p.Manual.Checked) + " " + secret + "   ")
	b.WriteString(radio(!p.Manual.Checked) + " Use metadata file\n\n")

	b.WriteString(m.renderInputs())
	b.WriteString("\n")
	b.WriteString(buttonLabel(p.DecryptForm().Submit))
	b.WriteString(renderResult(p.Result(view.IDDecryptResult), nil, nil))
	return b.String()
}

func renderResult(res *view.ResultPanel, copyHex, copyBase64 *view.Button) string {
	if res == nil || res.Hidden {
		return ""
	}

	if !res.Success {
		return "\n\n" + errorStyle.Render(res.Title+":") + " " + res.Message
	}

	text := res.Text()
	if res.Key != nil && copyHex != nil && copyBase64 != nil {
		text = strings.Replace(text, "Hex: "+res.Key.KeyHex, "Hex: "+res.Key.KeyHex+"  "+copyHex.Label, 1)
		text = strings.Replace(text, "Base64: "+res.Key.KeyBase64, "Base64: "+res.Key.KeyBase64+"  "+copyBase64.Label, 1)
	}
	lines := strings.SplitN(text, "\n", 2)
	out := "\n\n" + successStyle.Render(lines[0])
	if len(lines) > 1 {
		out += "\n" + lines[1]
	}
	return out
}

func (m model) hotKeys() string {
	parts := []string{"f1/f2: tabs", "tab: next field", "enter: submit"}
	if m.currentTab() == view.TabEncrypt && m.page.Mode == models.ModeKey {
		parts = append(parts, "ctrl+g: generate key", "ctrl+k: own key", "ctrl+y/ctrl+b: copy hex/base64")
	}
	if m.currentTab() == view.TabDecrypt {
		parts = append(parts, "ctrl+t: key or metadata")
	}
	parts = append(parts, "ctrl+s: download", "f3: about")
	return strings.Join(parts, "  ")
}

func buttonLabel(b *view.Button) string {
	if b == nil {
		return ""
	}
	if b.Disabled {
		return helpStyle.Render("[ " + b.Label + " ]")
	}
	return "[ " + b.Label + " ]"
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func radio(checked bool) string {
	if checked {
		return "(•)"
	}
	return "( )"
}
