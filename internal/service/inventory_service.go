package service

import (
	"errors"
	"fmt"

	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/ws"

	"github.com/shopspring/decimal"
)

// SellResult carries the confirmation message and the total price of
// the recorded sale.
type SellResult struct {
	Message   string
	SalePrice decimal.Decimal
}

// InventoryService owns the two stock-mutating operations. Sell is
// the transactional core: check, decrement and log atomically.
type InventoryService interface {
	Sell(productID uint, quantitySold int) (*SellResult, error)
	Restock(productID uint, quantity int) (string, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		wsHub:       hub,
	}
}

func (s *inventoryService) Sell(productID uint, quantitySold int) (*SellResult, error) {
	// Validation happens before any storage access.
	if productID == 0 || quantitySold <= 0 {
		return nil, apperror.Invalid("Invalid product ID or quantity")
	}

	receipt, err := s.saleRepo.RecordSale(productID, quantitySold)
	if err != nil {
		var insufficient *apperror.InsufficientStockError
		if errors.Is(err, apperror.ErrNotFound) || errors.As(err, &insufficient) {
			return nil, err
		}
		return nil, apperror.Storage("processing sale", err)
	}

	result := &SellResult{
		Message:   fmt.Sprintf("Sold %d x %s for %s", receipt.QuantitySold, receipt.ProductName, receipt.SalePrice.StringFixed(2)),
		SalePrice: receipt.SalePrice,
	}

	go s.wsHub.Publish("sale_recorded", result.Message, map[string]interface{}{
		"product_id":    productID,
		"product_name":  receipt.ProductName,
		"quantity_sold": receipt.QuantitySold,
		"sale_price":    receipt.SalePrice,
		"new_stock":     receipt.Remaining,
	})

	return result, nil
}

func (s *inventoryService) Restock(productID uint, quantity int) (string, error) {
	if productID == 0 || quantity <= 0 {
		return "", apperror.Invalid("Invalid product ID or quantity")
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", apperror.NotFound("Product not found")
		}
		return "", apperror.Storage("restocking product", err)
	}

	rows, err := s.productRepo.IncrementStock(productID, quantity)
	if err != nil {
		return "", apperror.Storage("restocking product", err)
	}
	if rows == 0 {
		// Deleted between the lookup and the increment.
		return "", apperror.NotFound("Product not found")
	}

	message := fmt.Sprintf("Added %d units to %s", quantity, product.Name)

	go s.wsHub.Publish("product_restocked", message, map[string]interface{}{
		"product_id":   productID,
		"product_name": product.Name,
		"quantity":     quantity,
		"new_stock":    product.Quantity + quantity,
	})

	return message, nil
}
