package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-file-crypt/internal/adapter"
	"github.com/MKhiriev/go-file-crypt/internal/view"
	"github.com/MKhiriev/go-file-crypt/models"
)

// Downloader fetches produced files from the server.
type Downloader interface {
	Download(ctx context.Context, name, dir string) (string, error)
}

// model hosts the view bindings. Exchanges run as commands; their
// results come back as messages and are applied in Update.
type model struct {
	ctx         context.Context
	controller  *view.Controller
	page        *view.Page
	alerts      *alertQueue
	downloader  Downloader
	downloadDir string

	inputs []boundInput
	focus  int

	// copy buttons of the key display and the encrypt result
	copyHexBtn    *view.Button
	copyBase64Btn *view.Button

	toastSeq      int
	status        string
	downloading   bool
	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

func newModel(ctx context.Context, controller *view.Controller, alerts *alertQueue, downloader Downloader, opts Options) model {
	page := controller.Page()
	m := model{
		ctx:           ctx,
		controller:    controller,
		page:          page,
		alerts:        alerts,
		downloader:    downloader,
		downloadDir:   opts.DownloadDir,
		inputs:        newInputs(page.Mode),
		copyHexBtn:    view.NewButton("copyHex", "📋 Copy"),
		copyBase64Btn: view.NewButton("copyBase64", "📋 Copy"),
		buildInfo:     opts.BuildInfo,
		serverVersion: opts.ServerVersion,
	}
	m.refocus()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case keyGeneratedMsg:
		if m.controller.FinishGenerateKey(msg.key, msg.err) {
			m.reload()
			m.toastSeq++
			return m, expireToast(m.toastSeq)
		}
		return m, nil

	case submittedMsg:
		m.controller.FinishSubmit(msg.formID, msg.outcome)
		return m, nil

	case downloadedMsg:
		m.downloading = false
		if msg.err != nil {
			m.alerts.Alert("Download failed: " + downloadMessage(msg.err))
			return m, nil
		}
		m.status = "Saved " + joinPaths(msg.paths)
		return m, nil

	case copyExpiredMsg:
		m.controller.RevertCopy(msg.button, msg.token)
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.controller.ClearToast()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if _, ok := m.alerts.current(); ok {
		if key.Matches(msg, keys.close) || key.Matches(msg, keys.submit) {
			m.alerts.dismiss()
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.close) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.encryptTab):
		return m.openTab(view.TabEncrypt), nil
	case key.Matches(msg, keys.decryptTab):
		return m.openTab(view.TabDecrypt), nil
	case key.Matches(msg, keys.next):
		return m.moveFocus(1), nil
	case key.Matches(msg, keys.prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, keys.generate):
		return m.generateKey()
	case key.Matches(msg, keys.customKey):
		if m.page.UseCustomKey != nil && m.currentTab() == view.TabEncrypt {
			m.controller.ToggleCustomKey(!m.page.UseCustomKey.Checked)
			m.refocus()
		}
		return m, nil
	case key.Matches(msg, keys.decryptMode):
		if m.currentTab() == view.TabDecrypt {
			m.controller.ToggleDecryptMethod(!m.page.Manual.Checked)
			m.focus = 0
			m.refocus()
		}
		return m, nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.copyHex):
		return m.copyKey(func(k models.GeneratedKey) string { return k.KeyHex }, m.copyHexBtn)
	case key.Matches(msg, keys.copyBase64):
		return m.copyKey(func(k models.GeneratedKey) string { return k.KeyBase64 }, m.copyBase64Btn)
	case key.Matches(msg, keys.download):
		return m.download()
	case key.Matches(msg, keys.close):
		m.status = ""
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) currentTab() string {
	return m.page.Tabs.Current()
}

func (m model) openTab(name string) model {
	m.controller.OpenTab(name)
	m.status = ""
	m.focus = 0
	m.refocus()
	return m
}

// visibleInputs returns the indexes of the inputs on screen.
func (m model) visibleInputs() []int {
	var idx []int
	tab := m.currentTab()
	for i, in := range m.inputs {
		if in.tab == tab && in.visible(m.page) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m model) focused() int {
	visible := m.visibleInputs()
	if len(visible) == 0 {
		return -1
	}
	return visible[m.focus]
}

func (m model) moveFocus(delta int) model {
	n := len(m.visibleInputs())
	if n == 0 {
		return m
	}
	m.focus = (m.focus + delta + n) % n
	m.refocus()
	return m
}

// refocus clamps the focus to the visible inputs and focuses exactly one.
func (m *model) refocus() {
	visible := m.visibleInputs()
	if m.focus >= len(visible) {
		m.focus = 0
	}

	for i := range m.inputs {
		m.inputs[i].input.Blur()
	}
	if len(visible) > 0 {
		m.inputs[visible[m.focus]].input.Focus()
	}
}

// reload copies page values the controller may have changed back into
// the inputs.
func (m *model) reload() {
	for i := range m.inputs {
		if m.inputs[i].load != nil {
			m.inputs[i].input.SetValue(m.inputs[i].load(m.page))
		}
	}
	m.refocus()
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	i := m.focused()
	if i < 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[i].input, cmd = m.inputs[i].input.Update(msg)
	m.inputs[i].apply(m.page, m.inputs[i].input.Value())
	return m, cmd
}

func (m model) generateKey() (tea.Model, tea.Cmd) {
	if m.currentTab() != view.TabEncrypt || !m.controller.BeginGenerateKey() {
		return m, nil
	}

	ctx, c := m.ctx, m.controller
	return m, func() tea.Msg {
		generated, err := c.GenerateKey(ctx)
		return keyGeneratedMsg{key: generated, err: err}
	}
}

func (m model) submit() (tea.Model, tea.Cmd) {
	formID := view.IDEncryptForm
	if m.currentTab() == view.TabDecrypt {
		formID = m.page.DecryptForm().ID
	}

	payload, ok := m.controller.BeginSubmit(formID)
	if !ok {
		return m, nil
	}
	m.status = ""

	ctx, c := m.ctx, m.controller
	return m, func() tea.Msg {
		return submittedMsg{formID: formID, outcome: c.Submit(ctx, formID, payload)}
	}
}

// copyKey copies the key of the encrypt result, or the generated key when
// no result shows one.
func (m model) copyKey(pick func(models.GeneratedKey) string, btn *view.Button) (tea.Model, tea.Cmd) {
	text := ""
	if res := m.page.Result(view.IDEncryptResult); res != nil && !res.Hidden && res.Key != nil {
		text = pick(*res.Key)
	} else if m.page.KeyHex != nil && m.page.KeyDisplay != nil && !m.page.KeyDisplay.Hidden {
		text = pick(models.GeneratedKey{KeyHex: m.page.KeyHex.Value, KeyBase64: m.page.KeyBase64.Value})
	}
	if text == "" {
		return m, nil
	}

	token, ok := m.controller.Copy(text, btn)
	if !ok {
		return m, nil
	}
	return m, tea.Tick(view.CopiedFeedbackDuration, func(time.Time) tea.Msg {
		return copyExpiredMsg{button: btn, token: token}
	})
}

// download saves every file linked from the visible result panel.
func (m model) download() (tea.Model, tea.Cmd) {
	resultID := view.IDEncryptResult
	if m.currentTab() == view.TabDecrypt {
		resultID = view.IDDecryptResult
	}

	res := m.page.Result(resultID)
	if m.downloading || res == nil || res.Hidden || !res.Success || len(res.Links) == 0 {
		return m, nil
	}
	m.downloading = true
	m.status = "Downloading..."

	names := make([]string, 0, len(res.Links))
	for _, link := range res.Links {
		names = append(names, link.Name)
	}

	ctx, d, dir := m.ctx, m.downloader, m.downloadDir
	return m, func() tea.Msg {
		paths := make([]string, 0, len(names))
		for _, name := range names {
			path, err := d.Download(ctx, name, dir)
			if err != nil {
				return downloadedMsg{paths: paths, err: err}
			}
			paths = append(paths, path)
		}
		return downloadedMsg{paths: paths}
	}
}

func expireToast(seq int) tea.Cmd {
	return tea.Tick(view.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// downloadMessage keeps server strings verbatim and shortens transport errors.
func downloadMessage(err error) string {
	if errors.Is(err, adapter.ErrNetwork) {
		return humanizeServerUnavailableError(err)
	}
	return err.Error()
}
