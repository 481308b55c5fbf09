package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/models"
)

// TUI runs the interactive terminal client.
type TUI struct {
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	copyToken bool
	copy      func(string) error

	logger *logger.Logger
}

// New creates a [TUI]. When copyToken is set the session token is put into
// the system clipboard right after a successful login.
func New(server adapter.ServerAdapter, buildInfo models.AppBuildInfo, copyToken bool, logger *logger.Logger) *TUI {
	return &TUI{
		server:    server,
		buildInfo: buildInfo,
		copyToken: copyToken,
		copy:      clipboard.WriteAll,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. A ctrl+c exit is
// reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.server, t.buildInfo, t.copy, t.copyToken)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("tui stopped by context")
			return nil
		}
		t.logger.Err(err).Msg("tui stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}

	if m, ok := final.(*RootModel); ok && m.Quitting() {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
