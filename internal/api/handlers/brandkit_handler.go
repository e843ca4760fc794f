package handlers

import (
	"errors"

	"LogoForge/domain"
	"LogoForge/internal/api/presenters"
	"LogoForge/pkg/brandkit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BrandKitHandler interface {
		Generate(c *fiber.Ctx) error
		GetBrandKits(c *fiber.Ctx) error
		GetBrandKit(c *fiber.Ctx) error
	}

	brandKitHandler struct {
		brandKitService brandkit.BrandKitService
		validator       *validator.Validate
	}
)

func NewBrandKitHandler(brandKitService brandkit.BrandKitService, validator *validator.Validate) BrandKitHandler {
	return &brandKitHandler{
		brandKitService: brandKitService,
		validator:       validator,
	}
}

func (h *brandKitHandler) Generate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.GenerateBrandKitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateBrandKit, err)
	}

	res, err := h.brandKitService.Generate(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLogoNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerateBrandKit, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateBrandKit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateBrandKit)
}

func (h *brandKitHandler) GetBrandKits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.brandKitService.GetUserBrandKits(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBrandKits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBrandKits)
}

func (h *brandKitHandler) GetBrandKit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.brandKitService.GetBrandKitByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		if errors.Is(err, domain.ErrBrandKitNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetBrandKit, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBrandKit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBrandKit)
}
