package main

import (
	"context"
	"log/slog"

	"marketplace/config"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/blobstore"

	"github.com/pkg/errors"
)

// env is the shared setup of every subcommand.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage *blobstore.Storage
}

func loadEnv(ctx context.Context) (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	storage, err := blobstore.Open(ctx, cfg.Persistence, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, storage: storage}, nil
}

func (e *env) close() {
	if err := e.storage.Close(); err != nil {
		e.logger.Warn("failed to close state bucket", slog.Any("error", err))
	}
}
