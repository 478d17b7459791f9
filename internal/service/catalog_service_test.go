package service

import (
	"errors"
	"testing"

	"go-stock-tracker/internal/apperror"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	testCases := []struct {
		name    string
		product model.Product
		wantMsg string
	}{
		{
			name:    "missing name",
			product: model.Product{Category: "Tools"},
			wantMsg: "Product name and category are required",
		},
		{
			name:    "missing category",
			product: model.Product{Name: "Widget"},
			wantMsg: "Product name and category are required",
		},
		{
			name:    "whitespace only name",
			product: model.Product{Name: "   ", Category: "Tools"},
			wantMsg: "Product name and category are required",
		},
		{
			name:    "negative quantity",
			product: model.Product{Name: "Widget", Category: "Tools", Quantity: -1},
			wantMsg: "Quantity and price must not be negative",
		},
		{
			name:    "negative price",
			product: model.Product{Name: "Widget", Category: "Tools", Price: decimal.NewFromFloat(-1.50)},
			wantMsg: "Quantity and price must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockProductRepo{createdID: 1}
			svc := NewCatalogService(repo, newTestHub())

			err := svc.CreateProduct(&tc.product)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestCreateProductSuccess(t *testing.T) {
	repo := &mockProductRepo{createdID: 7}
	svc := NewCatalogService(repo, newTestHub())

	product := &model.Product{
		Name:     "Widget",
		Category: "Tools",
		Quantity: 5,
		Price:    decimal.NewFromFloat(10.00),
	}
	err := svc.CreateProduct(product)

	require.NoError(t, err)
	assert.Equal(t, uint(7), product.ID, "store-assigned id surfaces on the request")
}

func TestCreateProductStorageFailure(t *testing.T) {
	repo := &mockProductRepo{createErr: errors.New("connection reset")}
	svc := NewCatalogService(repo, newTestHub())

	err := svc.CreateProduct(&model.Product{Name: "Widget", Category: "Tools"})

	assert.True(t, errors.Is(err, apperror.ErrStorage))
	assert.Equal(t, "Error adding product: connection reset", err.Error())
}

func TestUpdateProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{}, newTestHub())

		err := svc.UpdateProduct(&model.Product{Name: "Widget", Category: "Tools"})

		assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
		assert.Equal(t, "Invalid product ID", err.Error())
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{updRows: 0}, newTestHub())

		err := svc.UpdateProduct(&model.Product{ID: 42, Name: "Widget", Category: "Tools"})

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("success", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{updRows: 1}, newTestHub())

		err := svc.UpdateProduct(&model.Product{ID: 42, Name: "Widget", Category: "Tools"})

		assert.NoError(t, err)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{}, newTestHub())
		err := svc.DeleteProduct(0)
		assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{delRows: 0}, newTestHub())
		err := svc.DeleteProduct(42)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.Equal(t, "Product not found", err.Error())
	})

	t.Run("success", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{delRows: 1}, newTestHub())
		assert.NoError(t, svc.DeleteProduct(42))
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("maps repo sentinel to not found", func(t *testing.T) {
		svc := NewCatalogService(&mockProductRepo{findErr: repository.ErrProductNotFound}, newTestHub())

		_, err := svc.GetProduct(42)

		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("success", func(t *testing.T) {
		want := &model.Product{ID: 1, Name: "Widget", Category: "Tools"}
		svc := NewCatalogService(&mockProductRepo{product: want}, newTestHub())

		got, err := svc.GetProduct(1)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestGetAllProductsStorageFailure(t *testing.T) {
	svc := NewCatalogService(&mockProductRepo{listErr: errors.New("timeout")}, newTestHub())

	_, err := svc.GetAllProducts()

	assert.True(t, errors.Is(err, apperror.ErrStorage))
}
