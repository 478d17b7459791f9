package handler

import (
	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

type sellRequest struct {
	ProductID    uint `json:"product_id" form:"product_id"`
	QuantitySold int  `json:"quantity_sold" form:"quantity_sold"`
}

type restockRequest struct {
	ProductID uint `json:"product_id" form:"product_id"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	var req sellRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.Invalid("Invalid product ID or quantity"))
	}

	result, err := h.service.Sell(req.ProductID, req.QuantitySold)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{
		"message":    result.Message,
		"sale_price": result.SalePrice,
	})
}

func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var req restockRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.Invalid("Invalid product ID or quantity"))
	}

	message, err := h.service.Restock(req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"message": message})
}
