package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google-marketing-solutions/madpmax-sub000/core/ads"
	"github.com/google-marketing-solutions/madpmax-sub000/core/auth"
	"github.com/google-marketing-solutions/madpmax-sub000/core/config"
	"github.com/google-marketing-solutions/madpmax-sub000/core/database"
	"github.com/google-marketing-solutions/madpmax-sub000/core/logger"
	"github.com/google-marketing-solutions/madpmax-sub000/core/media"
	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
	"github.com/google-marketing-solutions/madpmax-sub000/core/storage"
	"github.com/google-marketing-solutions/madpmax-sub000/feature/history"
)

// app bundles the shared collaborators every command needs: configuration,
// logging, the two Google API clients, the media fetcher and the optional
// run-history store.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	sheets  sheets.Client
	ads     ads.Client
	fetcher media.Fetcher
	store   *history.Store
}

// bootstrap loads configuration and wires the collaborators. Database and
// object storage are optional: their absence is logged, not fatal.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(log)

	ts, err := auth.TokenSource(ctx, cfg.Auth)
	if err != nil {
		return nil, err
	}

	sheetsClient, err := sheets.NewClient(ctx, cfg.Sheets, ts)
	if err != nil {
		return nil, err
	}
	adsClient := ads.NewClient(cfg.Ads, ts)

	var store storage.Client
	if cfg.Storage.Enabled() {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}
	fetcher := media.NewFetcher(cfg.Storage.TimeoutSeconds, store, cfg.Storage.Bucket)

	var db *gorm.DB
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			log.Warn("Run history disabled, database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}
	historyStore := history.NewStore(db)
	if err := historyStore.Migrate(); err != nil {
		log.Warn("Failed to migrate history tables", zap.Error(err))
		historyStore = nil
	}

	return &app{
		cfg:     cfg,
		log:     log,
		sheets:  sheetsClient,
		ads:     adsClient,
		fetcher: fetcher,
		store:   historyStore,
	}, nil
}
