package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"focusplanner/internal/config"
	"focusplanner/internal/engine"
	"focusplanner/internal/storage"
)

type app struct {
	cfg *config.Config
	log *slog.Logger
	svc *engine.Service
}

func openStore(ctx context.Context, cfg *config.Config) (engine.StateStore, func(), error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	default:
		db, err := storage.Open(ctx, filepath.Join(cfg.DataDir, storage.DBFileName))
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			_ = db.Close()
		}
		return storage.NewKVRepo(db), cleanup, nil
	}
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	log := cfg.NewLogger(os.Stderr)

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(store, engine.ServiceOptions{
		Logger:   log,
		Location: cfg.Location(),
	})
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	log.DebugContext(ctx, "state loaded", "backend", cfg.Backend, "data_dir", cfg.DataDir, "timezone", cfg.Timezone)
	return &app{cfg: cfg, log: log, svc: svc}, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a.svc, cleanup, nil
}

// targetDate resolves --date against the service's reference zone.
func targetDate(svc *engine.Service) (time.Time, string, error) {
	d, err := svc.ParseDate(flagDate)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("--date: %w", err)
	}
	return d, svc.DateKey(d), nil
}
