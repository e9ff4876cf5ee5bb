package app

import (
	"fmt"
	"log"
	"strings"

	"career-coach/internal/config"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/delivery/http/routes"
	"career-coach/internal/repository"
	"career-coach/internal/scheduler"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Scheduler *scheduler.Scheduler
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)
	routes.Register(f, routes.Deps{
		Config:    cfg,
		DB:        c.DB,
		Cache:     c.Cache,
		Generator: c.Generator,
		Logger:    c.Logger,
	})

	insightRepo := repository.NewPostgresInsightRepository(c.DB)
	refreshJob := scheduler.NewRefreshJob(insightRepo, c.Generator, c.Cache, c.Logger)
	sched := scheduler.New(refreshJob, cfg.Scheduler.RefreshCron, c.Logger)

	app := &App{Fiber: f, Scheduler: sched, Container: c}
	cleanup := func() error {
		sched.Stop()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
