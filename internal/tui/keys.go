package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	encryptTab  key.Binding
	decryptTab  key.Binding
	buildInfo   key.Binding
	next        key.Binding
	prev        key.Binding
	submit      key.Binding
	close       key.Binding
	generate    key.Binding
	customKey   key.Binding
	decryptMode key.Binding
	copyHex     key.Binding
	copyBase64  key.Binding
	download    key.Binding
	quit        key.Binding
}

var keys = keyMap{
	encryptTab:  key.NewBinding(key.WithKeys("f1")),
	decryptTab:  key.NewBinding(key.WithKeys("f2")),
	buildInfo:   key.NewBinding(key.WithKeys("f3")),
	next:        key.NewBinding(key.WithKeys("tab", "down")),
	prev:        key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:      key.NewBinding(key.WithKeys("enter")),
	close:       key.NewBinding(key.WithKeys("esc")),
	generate:    key.NewBinding(key.WithKeys("ctrl+g")),
	customKey:   key.NewBinding(key.WithKeys("ctrl+k")),
	decryptMode: key.NewBinding(key.WithKeys("ctrl+t")),
	copyHex:     key.NewBinding(key.WithKeys("ctrl+y")),
	copyBase64:  key.NewBinding(key.WithKeys("ctrl+b")),
	download:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
}
