package handlers

import (
	"errors"

	"LogoForge/domain"
	"LogoForge/internal/api/presenters"
	"LogoForge/pkg/product"

	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
	}
)

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &productHandler{
		productService: productService,
	}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	products := h.productService.GetProducts()
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	res, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}
