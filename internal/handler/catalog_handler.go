package handler

import (
	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// productRequest accepts JSON or form bodies. Numeric fields the
// client omits or garbles decode to zero and are rejected by
// validation where a positive value is required.
type productRequest struct {
	Name        string  `json:"product_name" form:"product_name"`
	Category    string  `json:"category" form:"category"`
	Quantity    int     `json:"quantity" form:"quantity"`
	Price       float64 `json:"price" form:"price"`
	Description string  `json:"description" form:"description"`
}

func (r *productRequest) toModel() *model.Product {
	return &model.Product{
		Name:        r.Name,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Price:       decimal.NewFromFloat(r.Price),
		Description: r.Description,
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperror.Invalid("Invalid product ID")
	}
	return uint(id), nil
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.Invalid("Invalid request body"))
	}

	product := req.toModel()
	if err := h.service.CreateProduct(product); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product added successfully",
		"id":      product.ID,
	})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperror.Invalid("Invalid request body"))
	}

	product := req.toModel()
	product.ID = id
	if err := h.service.UpdateProduct(product); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"message": "Product updated successfully"})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"message": "Product deleted successfully"})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"data": product})
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return fail(c, err)
	}
	if products == nil {
		products = []model.Product{}
	}

	return ok(c, fiber.Map{"data": products})
}
