package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	// An empty skill list is allowed; it scores zero against everything
	// and returns the catalog head in load order.
	items, err := h.uc.Recommend(c.Context(), req.Skills, req.TopK)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationsResponse(items))
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrModelNotFitted):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Model is not loaded", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
