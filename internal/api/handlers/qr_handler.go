package handlers

import (
	"Fridgify-Backend/domain"
	"Fridgify-Backend/internal/api/presenters"
	"Fridgify-Backend/pkg/qr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	QRHandler interface {
		GenerateQR(c *fiber.Ctx) error
		UploadQR(c *fiber.Ctx) error
	}

	qrHandler struct {
		qrService qr.QRService
		validator *validator.Validate
	}
)

func NewQRHandler(qrService qr.QRService, validator *validator.Validate) QRHandler {
	return &qrHandler{
		qrService: qrService,
		validator: validator,
	}
}

func (h *qrHandler) GenerateQR(c *fiber.Ctx) error {
	req := new(domain.GenerateQRRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateQR, err)
	}

	png, err := h.qrService.GenerateProductQR(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateQR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *qrHandler) UploadQR(c *fiber.Ctx) error {
	req := new(domain.GenerateQRRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadQR, err)
	}

	res, err := h.qrService.UploadProductQR(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadQR, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadQR)
}
