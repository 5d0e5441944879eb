package cmd

import (
	"errors"
	"fmt"

	"housenumber-audit/core/config"
	"housenumber-audit/core/database"
	"housenumber-audit/core/logger"
	"housenumber-audit/core/reference"
	"housenumber-audit/core/relations"
	"housenumber-audit/core/storage"
	"housenumber-audit/feature/report"

	"go.uber.org/zap"
)

// loadBase loads the configuration and the logger every command needs.
func loadBase() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func newStore(cfg *config.Config, l *zap.Logger) (*reference.Store, error) {
	validity, err := reference.ParseValidity(cfg.Reference.Staleness)
	if err != nil {
		return nil, err
	}
	return reference.NewStore(validity, l), nil
}

// openHistory connects to the history database. History is optional: a
// disabled or unreachable database yields nil.
func openHistory(cfg *config.Config, l *zap.Logger) *report.History {
	if !cfg.Database.Enabled {
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("History database unavailable", zap.Error(err))
		return nil
	}

	history := report.NewHistory(db)
	if err := history.Migrate(); err != nil {
		l.Warn("History database unavailable", zap.Error(err))
		return nil
	}
	return history
}

// openStorage creates the object storage client, or nil when storage is
// disabled.
func openStorage(cfg *config.Config) (storage.Client, error) {
	client, err := storage.NewClient(cfg.Storage)
	if errors.Is(err, storage.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return client, nil
}

type serviceOptions struct {
	history bool
	storage bool
}

func newService(cfg *config.Config, l *zap.Logger, opts serviceOptions) (*report.Service, error) {
	store, err := newStore(cfg, l)
	if err != nil {
		return nil, err
	}

	resolver, err := relations.NewResolver(cfg.Workspace.DataDir, l)
	if err != nil {
		return nil, err
	}

	o := report.Options{
		Workspace:     cfg.Workspace,
		ReferencePath: cfg.Reference.Path,
		Store:         store,
		Resolver:      resolver,
		Bucket:        cfg.Storage.Bucket,
		Logger:        l,
	}
	if opts.history {
		o.History = openHistory(cfg, l)
	}
	if opts.storage {
		client, err := openStorage(cfg)
		if err != nil {
			return nil, err
		}
		o.Storage = client
	}
	return report.NewService(o), nil
}
