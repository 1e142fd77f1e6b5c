package handler

import (
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	uc usecase.RecommendationUsecase
}

func NewHealthHandler(uc usecase.RecommendationUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{"model_loaded": h.uc != nil && h.uc.Ready()}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
