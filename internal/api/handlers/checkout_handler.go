package handlers

import (
	"encoding/json"
	"errors"

	"LogoForge/domain"
	"LogoForge/internal/api/presenters"
	"LogoForge/pkg/checkout"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CheckoutHandler interface {
		CreateCheckout(c *fiber.Ctx) error
		VerifyPayment(c *fiber.Ctx) error
		PaymentWebhook(c *fiber.Ctx) error
		GetPurchases(c *fiber.Ctx) error
		GetCompletedPurchases(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	checkoutHandler struct {
		checkoutService checkout.CheckoutService
		validator       *validator.Validate
	}
)

func NewCheckoutHandler(checkoutService checkout.CheckoutService, validator *validator.Validate) CheckoutHandler {
	return &checkoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

func (h *checkoutHandler) CreateCheckout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateCheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	res, err := h.checkoutService.CreateCheckout(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCheckout)
}

func (h *checkoutHandler) VerifyPayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	sessionID := c.Query("session_id")
	if sessionID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyPayment, errors.New("session_id is required"))
	}

	res, err := h.checkoutService.VerifyPayment(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyPayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyPayment)
}

// PaymentWebhook receives signed gateway notifications. An invalid
// signature rejects the request before any state is touched.
func (h *checkoutHandler) PaymentWebhook(c *fiber.Ctx) error {
	var notification domain.PaymentNotification
	if err := json.Unmarshal(c.Body(), &notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.checkoutService.HandleNotification(c.Context(), notification); err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWebhook, err)
	}

	return c.JSON(fiber.Map{"received": true})
}

func (h *checkoutHandler) GetPurchases(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.checkoutService.GetUserPurchases(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *checkoutHandler) GetCompletedPurchases(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.checkoutService.GetCompletedPurchases(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPurchases)
}

func (h *checkoutHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.checkoutService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPurchases, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
