package service

import (
	"errors"
	"testing"
	"time"

	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStatsRepo struct {
	stats *repository.InventoryStats
	err   error
}

func (m *mockStatsRepo) GetStatistics() (*repository.InventoryStats, error) {
	return m.stats, m.err
}

func newStatsService(pRepo *mockProductRepo, sRepo *mockSaleRepo, stRepo *mockStatsRepo) StatsService {
	return NewStatsService(pRepo, sRepo, stRepo, newTestHub())
}

func TestGetLowStockDefaultsThreshold(t *testing.T) {
	productRepo := &mockProductRepo{}
	svc := newStatsService(productRepo, &mockSaleRepo{}, &mockStatsRepo{})

	_, err := svc.GetLowStock(0)

	require.NoError(t, err)
	assert.Equal(t, DefaultLowStockThreshold, productRepo.lastThreshold)
}

func TestGetLowStockPassesThreshold(t *testing.T) {
	productRepo := &mockProductRepo{
		lowStock: []model.Product{
			{Name: "Empty", Quantity: 0},
			{Name: "Scarce", Quantity: 5},
		},
	}
	svc := newStatsService(productRepo, &mockSaleRepo{}, &mockStatsRepo{})

	products, err := svc.GetLowStock(10)

	require.NoError(t, err)
	assert.Equal(t, 10, productRepo.lastThreshold)
	require.Len(t, products, 2)
	assert.Equal(t, 0, products[0].Quantity, "repository returns ascending by quantity")
	assert.Equal(t, 5, products[1].Quantity)
}

func TestGetSalesSummary(t *testing.T) {
	saleRepo := &mockSaleRepo{
		sold:    13,
		revenue: decimal.NewFromFloat(130.00),
		recent: []repository.RecentSale{
			{ID: 2, QuantitySold: 3, SalePrice: decimal.NewFromFloat(30.00), SaleDate: time.Now(), ProductName: "Widget", Category: "Tools"},
		},
	}
	svc := newStatsService(&mockProductRepo{}, saleRepo, &mockStatsRepo{})

	summary, err := svc.GetSalesSummary()

	require.NoError(t, err)
	assert.Equal(t, int64(13), summary.TotalItemsSold)
	assert.True(t, summary.TotalSalesValue.Equal(decimal.NewFromFloat(130.00)))
	require.Len(t, summary.RecentSales, 1)
	assert.Equal(t, "Widget", summary.RecentSales[0].ProductName)
}

func TestGetStatistics(t *testing.T) {
	want := &repository.InventoryStats{
		TotalProducts: 3,
		TotalStock:    20,
		TotalValue:    decimal.NewFromFloat(200.00),
	}
	svc := newStatsService(&mockProductRepo{}, &mockSaleRepo{}, &mockStatsRepo{stats: want})

	stats, err := svc.GetStatistics()

	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestGetStatisticsStorageFailure(t *testing.T) {
	svc := newStatsService(&mockProductRepo{}, &mockSaleRepo{}, &mockStatsRepo{err: errors.New("relation missing")})

	_, err := svc.GetStatistics()

	assert.True(t, errors.Is(err, apperror.ErrStorage))
	assert.Equal(t, "Error fetching statistics: relation missing", err.Error())
}

func TestClearAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newStatsService(&mockProductRepo{}, &mockSaleRepo{}, &mockStatsRepo{})
		assert.NoError(t, svc.ClearAll())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := newStatsService(&mockProductRepo{}, &mockSaleRepo{clearErr: errors.New("permission denied")}, &mockStatsRepo{})

		err := svc.ClearAll()

		assert.True(t, errors.Is(err, apperror.ErrStorage))
		assert.Equal(t, "Error clearing data: permission denied", err.Error())
	})
}
