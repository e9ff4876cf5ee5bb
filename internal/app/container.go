package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"career-coach/internal/ai"
	"career-coach/internal/config"
	"career-coach/internal/database"
	"career-coach/internal/database/migration"
	dbpostgres "career-coach/internal/database/postgres"
	"career-coach/internal/infrastructure/cache"
	"career-coach/internal/insights"
)

// Container holds the process-lifetime collaborators. Everything here
// is injected downward; nothing reaches for globals.
type Container struct {
	Config    config.Config
	DB        database.DB
	Cache     *cache.Redis
	Generator *insights.Generator
	Logger    *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	groq := ai.NewGroqClient(cfg.Groq, http.DefaultClient)

	return &Container{
		Config:    cfg,
		DB:        db,
		Cache:     cache.NewRedis(cfg.Redis, logger),
		Generator: insights.NewGenerator(groq),
		Logger:    logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
