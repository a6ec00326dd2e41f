package handlers

import (
	"errors"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/internal/api/presenters"
	"Fridgify-Backend/pkg/statistic"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StatisticHandler interface {
		UpdateStatistic(c *fiber.Ctx) error
		GetTopProducts(c *fiber.Ctx) error
	}

	statisticHandler struct {
		statisticService statistic.StatisticService
		validator        *validator.Validate
	}
)

func NewStatisticHandler(statisticService statistic.StatisticService, validator *validator.Validate) StatisticHandler {
	return &statisticHandler{
		statisticService: statisticService,
		validator:        validator,
	}
}

func (h *statisticHandler) UpdateStatistic(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	req := new(domain.UpdateStatisticRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatistic, err)
	}

	if err := h.statisticService.UpdateStatistic(c.Context(), *req, userID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatistic, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateStatistic, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStatistic)
}

func (h *statisticHandler) GetTopProducts(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	res, err := h.statisticService.GetTopProducts(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatisticNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetTopProducts, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTopProducts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTopProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopProducts)
}
