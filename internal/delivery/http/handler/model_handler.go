package handler

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ModelHandler exposes the retrain trigger. Reload refits from the catalog
// source and swaps the snapshot atomically; in-flight requests keep scoring
// against the old model until the swap lands.
type ModelHandler struct {
	uc usecase.RecommendationUsecase
}

func NewModelHandler(uc usecase.RecommendationUsecase) *ModelHandler {
	return &ModelHandler{uc: uc}
}

func (h *ModelHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/model")
	grp.Post("/reload", h.Reload)
}

func (h *ModelHandler) Reload(c fiber.Ctx) error {
	if err := h.uc.Reload(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
