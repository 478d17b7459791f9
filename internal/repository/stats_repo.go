package repository

import (
	"go-stock-tracker/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryStat is the per-category breakdown row.
type CategoryStat struct {
	Category      string          `json:"category"`
	ProductCount  int64           `json:"product_count"`
	TotalQty      int64           `json:"total_qty"`
	CategoryValue decimal.Decimal `json:"category_value"`
}

// TopProduct is one of the most valuable products by stock valuation.
type TopProduct struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
}

// InventoryStats is the aggregate snapshot for the statistics view.
type InventoryStats struct {
	TotalProducts int64           `json:"total_products"`
	TotalStock    int64           `json:"total_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	LowStockCount int64           `json:"low_stock_count"`
	OutOfStock    int64           `json:"out_of_stock"`
	Categories    []CategoryStat  `json:"categories"`
	TopProducts   []TopProduct    `json:"top_products"`
	TotalSold     int64           `json:"total_sold"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type StatsRepository interface {
	GetStatistics() (*InventoryStats, error)
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

const lowStockThreshold = 10

func (r *statsRepo) GetStatistics() (*InventoryStats, error) {
	var stats InventoryStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	var inventory struct {
		TotalStock int64
		TotalValue decimal.Decimal
		AvgPrice   decimal.Decimal
	}
	err := r.db.Model(&model.Product{}).
		Select(`COALESCE(SUM(quantity), 0) AS total_stock,
			COALESCE(SUM(price * quantity), 0) AS total_value,
			COALESCE(AVG(price), 0) AS avg_price`).
		Scan(&inventory).Error
	if err != nil {
		return nil, err
	}
	stats.TotalStock = inventory.TotalStock
	stats.TotalValue = inventory.TotalValue
	stats.AvgPrice = inventory.AvgPrice

	if err := r.db.Model(&model.Product{}).
		Where("quantity < ?", lowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity = 0").
		Count(&stats.OutOfStock).Error; err != nil {
		return nil, err
	}

	err = r.db.Model(&model.Product{}).
		Select(`category, COUNT(*) AS product_count,
			COALESCE(SUM(quantity), 0) AS total_qty,
			COALESCE(SUM(price * quantity), 0) AS category_value`).
		Group("category").
		Order("category_value DESC").
		Scan(&stats.Categories).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.Product{}).
		Select("product_name, quantity, price, (price * quantity) AS value").
		Order("value DESC").
		Limit(5).
		Scan(&stats.TopProducts).Error
	if err != nil {
		return nil, err
	}

	var sales struct {
		TotalSold    int64
		TotalRevenue decimal.Decimal
	}
	err = r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(quantity_sold), 0) AS total_sold, COALESCE(SUM(sale_price), 0) AS total_revenue").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	stats.TotalSold = sales.TotalSold
	stats.TotalRevenue = sales.TotalRevenue

	return &stats, nil
}
