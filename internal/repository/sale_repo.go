package repository

import (
	"errors"
	"time"

	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleReceipt is what RecordSale hands back on success.
type SaleReceipt struct {
	ProductName  string
	QuantitySold int
	SalePrice    decimal.Decimal
	Remaining    int
}

// RecentSale is a sale row joined with the product it referenced.
// Product fields come back empty if the product was deleted since.
type RecentSale struct {
	ID           uint            `json:"id"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	SaleDate     time.Time       `json:"sale_date"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
}

type SaleRepository interface {
	RecordSale(productID uint, quantitySold int) (*SaleReceipt, error)
	RecentSales(limit int) ([]RecentSale, error)
	Totals() (totalSold int64, totalRevenue decimal.Decimal, err error)
	ClearAll() error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// RecordSale atomically checks stock, decrements it and appends the
// sale row. The FOR UPDATE read serializes concurrent sales on the
// same product; the conditional decrement guarantees quantity never
// drops below zero even if the lock strategy changes.
func (r *saleRepo) RecordSale(productID uint, quantitySold int) (*SaleReceipt, error) {
	var receipt *SaleReceipt

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product not found")
			}
			return err
		}

		if product.Quantity < quantitySold {
			return &apperror.InsufficientStockError{Available: product.Quantity}
		}

		salePrice := product.Price.Mul(decimal.NewFromInt(int64(quantitySold)))

		res := tx.Model(&model.Product{}).
			Where("id = ? AND quantity >= ?", productID, quantitySold).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", quantitySold),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &apperror.InsufficientStockError{Available: product.Quantity}
		}

		sale := model.Sale{
			ProductID:    productID,
			QuantitySold: quantitySold,
			SalePrice:    salePrice,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		receipt = &SaleReceipt{
			ProductName:  product.Name,
			QuantitySold: quantitySold,
			SalePrice:    salePrice,
			Remaining:    product.Quantity - quantitySold,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// RecentSales uses a LEFT JOIN so history survives product deletion.
func (r *saleRepo) RecentSales(limit int) ([]RecentSale, error) {
	var results []RecentSale
	err := r.db.Model(&model.Sale{}).
		Select(`sales.id, sales.quantity_sold, sales.sale_price, sales.sale_date,
			COALESCE(products.product_name, '') AS product_name,
			COALESCE(products.category, '') AS category`).
		Joins("LEFT JOIN products ON products.id = sales.product_id").
		Order("sales.sale_date DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

func (r *saleRepo) Totals() (int64, decimal.Decimal, error) {
	var row struct {
		TotalSold    int64
		TotalRevenue decimal.Decimal
	}
	err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(quantity_sold), 0) AS total_sold, COALESCE(SUM(sale_price), 0) AS total_revenue").
		Scan(&row).Error
	return row.TotalSold, row.TotalRevenue, err
}

// ClearAll wipes the whole ledger and restarts both identity
// sequences, so the next product created gets id 1. Sales go first
// while a foreign key may still exist in older schemas.
func (r *saleRepo) ClearAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM sales").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM products").Error; err != nil {
			return err
		}
		if err := tx.Exec("ALTER SEQUENCE sales_id_seq RESTART WITH 1").Error; err != nil {
			return err
		}
		return tx.Exec("ALTER SEQUENCE products_id_seq RESTART WITH 1").Error
	})
}
