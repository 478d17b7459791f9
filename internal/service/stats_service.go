package service

import (
	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/ws"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is used when the caller does not supply one.
const DefaultLowStockThreshold = 10

const recentSalesLimit = 10

// SalesSummary aggregates the whole sale history plus the most recent
// sales joined with product details.
type SalesSummary struct {
	TotalItemsSold  int64                   `json:"total_items_sold"`
	TotalSalesValue decimal.Decimal         `json:"total_sales_value"`
	RecentSales     []repository.RecentSale `json:"recent_sales"`
}

// StatsService is the read-side aggregation over the ledger, plus the
// administrative reset.
type StatsService interface {
	GetLowStock(threshold int) ([]model.Product, error)
	GetSalesSummary() (*SalesSummary, error)
	GetStatistics() (*repository.InventoryStats, error)
	ClearAll() error
}

type statsService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	statsRepo   repository.StatsRepository
	wsHub       *ws.Hub
}

func NewStatsService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, stRepo repository.StatsRepository, hub *ws.Hub) StatsService {
	return &statsService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		statsRepo:   stRepo,
		wsHub:       hub,
	}
}

func (s *statsService) GetLowStock(threshold int) ([]model.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	products, err := s.productRepo.FindLowStock(threshold)
	if err != nil {
		return nil, apperror.Storage("fetching low stock products", err)
	}
	return products, nil
}

func (s *statsService) GetSalesSummary() (*SalesSummary, error) {
	totalSold, totalRevenue, err := s.saleRepo.Totals()
	if err != nil {
		return nil, apperror.Storage("fetching sales", err)
	}

	recent, err := s.saleRepo.RecentSales(recentSalesLimit)
	if err != nil {
		return nil, apperror.Storage("fetching sales", err)
	}

	return &SalesSummary{
		TotalItemsSold:  totalSold,
		TotalSalesValue: totalRevenue,
		RecentSales:     recent,
	}, nil
}

func (s *statsService) GetStatistics() (*repository.InventoryStats, error) {
	stats, err := s.statsRepo.GetStatistics()
	if err != nil {
		return nil, apperror.Storage("fetching statistics", err)
	}
	return stats, nil
}

// ClearAll is the irreversible administrative reset: all sales, all
// products, both identity sequences back to 1.
func (s *statsService) ClearAll() error {
	if err := s.saleRepo.ClearAll(); err != nil {
		return apperror.Storage("clearing data", err)
	}

	go s.wsHub.Publish("data_cleared", "All data cleared", nil)

	return nil
}
