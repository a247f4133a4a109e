package app

import (
	"context"
	"time"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/config"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/core"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/prompt"
	"github.com/rs/zerolog"
)

type App struct {
	client *cloudflare.Client
	engine *core.SyncEngine
	logger zerolog.Logger
}

// New creates a new App by wiring up all dependencies.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	client := cloudflare.New(
		cfg.Cloudflare.AccountID,
		cfg.Cloudflare.APIToken,
		cfg.Cloudflare.BaseURL,
		time.Duration(cfg.Cloudflare.TimeoutSeconds)*time.Second,
		logger,
	)

	confirm := core.Confirm(prompt.Interactive())
	if cfg.App.AutoApprove {
		confirm = prompt.AutoApprove()
	}
	engine := core.NewSyncEngine(logger, client, confirm)

	return &App{
		client: client,
		engine: engine,
		logger: logger,
	}, nil
}

// Run executes one full reconciliation and returns.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("Application starting")
	return a.engine.Run(ctx)
}
