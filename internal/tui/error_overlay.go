package tui

import "github.com/atotto/clipboard"

// alertQueue collects alerts raised by the view controller. It is only
// touched from the bubbletea event loop.
type alertQueue struct {
	messages []string
}

func (q *alertQueue) Alert(message string) {
	q.messages = append(q.messages, message)
}

// current returns the alert on screen.
func (q *alertQueue) current() (string, bool) {
	if len(q.messages) == 0 {
		return "", false
	}
	return q.messages[0], true
}

func (q *alertQueue) dismiss() {
	if len(q.messages) > 0 {
		q.messages = q.messages[1:]
	}
}

func renderAlert(message string) string {
	content := titleStyle.Render("Alert") + "\n\n" + message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

// systemClipboard writes through atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
