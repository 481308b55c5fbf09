package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-phone-auth/internal/adapter"
	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/tui"
	"github.com/MKhiriev/go-phone-auth/models"
)

// ui is the part of [tui.TUI] the application drives.
type ui interface {
	Run(ctx context.Context) error
}

// App is the terminal client process: a server adapter and the UI on top
// of it.
type App struct {
	ui     ui
	logger *logger.Logger
}

// NewApp builds the server adapter from cfg and the terminal UI on top of it.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &App{
		ui:     tui.New(server, buildInfo, cfg.App.CopyToken, logger),
		logger: logger,
	}, nil
}

// Run blocks until the user leaves the UI or the process receives
// SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return err
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
