// Package tui implements the terminal client of cosmic-brain on top of
// bubbletea: note capture, the recent-notes list, chat sessions, the
// dashboard and build information.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/internal/workers"
	"github.com/MKhiriev/cosmic-brain/models"
)

type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

func New(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	model := newAppModel(ctx, services, buildInfo, log)
	return &TUI{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
		logger:  log,
	}
}

// Run blocks until the user quits or the context passed to New is done.
func (t *TUI) Run() error {
	_, err := t.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI failed")
		return err
	}
	return nil
}

// Publish hands a refresh result to the running program. It is safe to call
// from any goroutine and returns once the program has exited.
func (t *TUI) Publish(r workers.Refresh) {
	t.program.Send(refreshMsg(r))
}
