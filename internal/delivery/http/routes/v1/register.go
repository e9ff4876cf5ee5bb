package v1

import (
	"log"

	"career-coach/internal/config"
	"career-coach/internal/database"
	"career-coach/internal/delivery/http/handler"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/infrastructure/cache"
	"career-coach/internal/insights"
	"career-coach/internal/pkg/jwt"
	"career-coach/internal/repository"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config    config.Config
	DB        database.DB
	Cache     *cache.Redis
	Generator *insights.Generator
	Logger    *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	insightRepo := repository.NewPostgresInsightRepository(d.DB)
	assessmentRepo := repository.NewPostgresAssessmentRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	insightUC := usecase.NewInsightService(userRepo, insightRepo, d.Generator, d.Cache, d.Logger)
	profileUC := usecase.NewProfileService(d.DB, userRepo, insightRepo, d.Generator, d.Cache, d.Logger)
	quizUC := usecase.NewQuizService(userRepo, assessmentRepo, d.Generator, d.Logger)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	handler.NewUserHandler(profileUC).RegisterRoutes(protected.Group("/users"))
	handler.NewInsightHandler(insightUC).RegisterRoutes(protected.Group("/insights"))
	handler.NewQuizHandler(quizUC).RegisterRoutes(protected.Group("/interview"))
}
