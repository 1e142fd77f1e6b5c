package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	recommendation *handler.RecommendationHandler
	model          *handler.ModelHandler
}

func NewRegistry(uc usecase.RecommendationUsecase) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(uc),
		recommendation: handler.NewRecommendationHandler(uc),
		model:          handler.NewModelHandler(uc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	r.recommendation.RegisterRoutes(v1)
	r.model.RegisterRoutes(v1)
}
