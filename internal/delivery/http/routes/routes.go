package routes

import (
	"log"

	"career-coach/internal/config"
	"career-coach/internal/database"
	"career-coach/internal/delivery/http/handler"
	v1 "career-coach/internal/delivery/http/routes/v1"
	"career-coach/internal/infrastructure/cache"
	"career-coach/internal/insights"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared collaborators the route tree wires into
// handlers.
type Deps struct {
	Config    config.Config
	DB        database.DB
	Cache     *cache.Redis
	Generator *insights.Generator
	Logger    *log.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config:    d.Config,
		DB:        d.DB,
		Cache:     d.Cache,
		Generator: d.Generator,
		Logger:    d.Logger,
	})
}
