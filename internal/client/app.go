package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/internal/workers"
)

var errNoUI = errors.New("no ui is provided")

type App struct {
	ctx     context.Context
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp binds ui to a refresh worker that runs for the lifetime of Run.
func NewApp(ctx context.Context, services *service.ClientServices, ui UI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	if services == nil {
		return nil, fmt.Errorf("new app: %w", service.ErrInvalidDataProvided)
	}

	refresher := workers.NewRefreshWorker(services, cfg.RefreshInterval, ui.Publish, log)
	return &App{
		ctx:     ctx,
		ui:      ui,
		workers: workers.NewWorkers(refresher),
		logger:  log,
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	if err := a.ui.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
