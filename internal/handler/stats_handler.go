package handler

import (
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetLowStock returns products below the threshold, lowest first.
// Query param: threshold (default 10).
func (h *StatsHandler) GetLowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", service.DefaultLowStockThreshold)
	if threshold <= 0 {
		threshold = service.DefaultLowStockThreshold
	}

	products, err := h.service.GetLowStock(threshold)
	if err != nil {
		return fail(c, err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return ok(c, fiber.Map{
		"data":      products,
		"count":     len(products),
		"threshold": threshold,
	})
}

func (h *StatsHandler) GetSalesSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSalesSummary()
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"data": summary})
}

func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"data": stats})
}

func (h *StatsHandler) ClearData(c *fiber.Ctx) error {
	if err := h.service.ClearAll(); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"message": "All data cleared successfully"})
}
