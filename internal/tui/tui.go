// Package tui is the terminal front end of the file-crypt client.
//
// It renders the [view.Page] bindings with bubbletea and turns key presses
// into [view.Controller] calls. Network exchanges run as tea commands.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-file-crypt/internal/adapter"
	"github.com/MKhiriev/go-file-crypt/internal/logger"
	"github.com/MKhiriev/go-file-crypt/internal/view"
	"github.com/MKhiriev/go-file-crypt/models"
)

// Options configure the terminal front end.
type Options struct {
	// Mode selects the key or password variant of the page.
	Mode models.Mode
	// DownloadDir receives the files saved with ctrl+s.
	DownloadDir string
	// RequestTimeout bounds every exchange with the server.
	RequestTimeout time.Duration

	BuildInfo     models.AppBuildInfo
	ServerVersion string
}

type TUI struct {
	backend adapter.ServerAdapter
	opts    Options

	logger *logger.Logger
}

func New(backend adapter.ServerAdapter, opts Options, logger *logger.Logger) (*TUI, error) {
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unsupported mode %q", opts.Mode)
	}

	return &TUI{backend: backend, opts: opts, logger: logger}, nil
}

// Run shows the page and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotATerminal
	}

	m := t.newModel(ctx)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("error running terminal ui: %w", err)
	}

	return nil
}

func (t *TUI) newModel(ctx context.Context) model {
	alerts := &alertQueue{}
	controller := view.NewController(
		view.NewPage(t.opts.Mode),
		t.backend,
		systemClipboard{},
		alerts,
		t.opts.RequestTimeout,
		t.logger,
	)

	return newModel(ctx, controller, alerts, t.backend, t.opts)
}
