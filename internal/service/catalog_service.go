package service

import (
	"errors"
	"fmt"
	"strings"

	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/ws"
	"go-stock-tracker/pkg/validator"
)

// CatalogService is plain product CRUD, no quantity-delta semantics.
type CatalogService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(req *model.Product) error
	DeleteProduct(id uint) error
	GetProduct(id uint) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func validateProductFields(req *model.Product) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Invalid("Product name and category are required")
	}
	if req.Quantity < 0 || req.Price.IsNegative() {
		return apperror.Invalid("Quantity and price must not be negative")
	}
	return nil
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if err := validateProductFields(req); err != nil {
		return err
	}

	if err := s.productRepo.Create(req); err != nil {
		return apperror.Storage("adding product", err)
	}

	go s.wsHub.Publish("product_created",
		fmt.Sprintf("Product '%s' added", req.Name),
		map[string]interface{}{
			"id":       req.ID,
			"name":     req.Name,
			"category": req.Category,
			"quantity": req.Quantity,
			"price":    req.Price,
		})

	return nil
}

// UpdateProduct replaces all editable fields unconditionally; it is a
// full replace, not a partial patch.
func (s *catalogService) UpdateProduct(req *model.Product) error {
	if req.ID == 0 {
		return apperror.Invalid("Invalid product ID")
	}
	if err := validateProductFields(req); err != nil {
		return err
	}

	rows, err := s.productRepo.Update(req)
	if err != nil {
		return apperror.Storage("updating product", err)
	}
	if rows == 0 {
		return apperror.NotFound("Product not found")
	}

	go s.wsHub.Publish("product_updated",
		fmt.Sprintf("Product '%s' updated", req.Name),
		map[string]interface{}{
			"id":       req.ID,
			"name":     req.Name,
			"quantity": req.Quantity,
			"price":    req.Price,
		})

	return nil
}

func (s *catalogService) DeleteProduct(id uint) error {
	if id == 0 {
		return apperror.Invalid("Invalid product ID")
	}

	rows, err := s.productRepo.Delete(id)
	if err != nil {
		return apperror.Storage("deleting product", err)
	}
	if rows == 0 {
		return apperror.NotFound("Product not found")
	}

	go s.wsHub.Publish("product_deleted", "Product deleted", map[string]interface{}{
		"id": id,
	})

	return nil
}

func (s *catalogService) GetProduct(id uint) (*model.Product, error) {
	if id == 0 {
		return nil, apperror.Invalid("Invalid product ID")
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, apperror.Storage("fetching product", err)
	}
	return product, nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperror.Storage("fetching products", err)
	}
	return products, nil
}
