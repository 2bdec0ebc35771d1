package app

import (
	"context"

	"github.com/NgChau9803/RG-Ecom-BE/internal/config"
	"github.com/NgChau9803/RG-Ecom-BE/internal/logger"
	"github.com/NgChau9803/RG-Ecom-BE/internal/redis"
	"github.com/NgChau9803/RG-Ecom-BE/internal/store"
)

type Infra struct {
	Store *store.Store
	Redis *redis.Client
}

// setupInfra connects the document store and Redis. Both are pinged
// before the server begins accepting connections; index bootstrap runs
// here so uniqueness holds from the first request.
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureIndexes(ctx, st); err != nil {
		return nil, err
	}

	logger.Info("document store ready", map[string]any{
		"database": cfg.MongoDatabase,
	})

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Store: st,
		Redis: redisClient,
	}, nil
}
