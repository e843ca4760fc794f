package handlers

import (
	"errors"

	"LogoForge/domain"
	"LogoForge/internal/api/presenters"
	"LogoForge/pkg/logo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LogoHandler interface {
		Preview(c *fiber.Ctx) error
		Generate(c *fiber.Ctx) error
		Regenerate(c *fiber.Ctx) error
		GetLogos(c *fiber.Ctx) error
		GetLogo(c *fiber.Ctx) error
	}

	logoHandler struct {
		logoService logo.LogoService
		validator   *validator.Validate
	}
)

func NewLogoHandler(logoService logo.LogoService, validator *validator.Validate) LogoHandler {
	return &logoHandler{
		logoService: logoService,
		validator:   validator,
	}
}

func (h *logoHandler) Preview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PreviewLogoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPreviewLogos, err)
	}

	res, err := h.logoService.Preview(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPreviewLogos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPreviewLogos)
}

func (h *logoHandler) Generate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.GenerateLogoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLogos, err)
	}

	res, err := h.logoService.Generate(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateLogos, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLogos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateLogos)
}

func (h *logoHandler) Regenerate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RegenerateLogoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.logoService.Regenerate(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLogoNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRegenerateLogo, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegenerateLogo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegenerateLogo)
}

func (h *logoHandler) GetLogos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.logoService.GetUserLogos(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogos)
}

func (h *logoHandler) GetLogo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.logoService.GetLogoByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrLogoNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetLogo, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLogo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLogo)
}
