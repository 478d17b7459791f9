package repository

import (
	"errors"
	"time"

	"go-stock-tracker/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindLowStock(threshold int) ([]model.Product, error)
	Update(product *model.Product) (int64, error)
	Delete(id uint) (int64, error)
	IncrementStock(id uint, qty int) (int64, error)
}

// ErrProductNotFound is returned by lookups when no row matches.
var ErrProductNotFound = errors.New("product not found")

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindLowStock(threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("quantity < ?", threshold).Order("quantity ASC").Find(&products).Error
	return products, err
}

// Update is a full replace of the editable fields; the caller checks
// the returned row count to detect a missing product.
func (r *productRepo) Update(product *model.Product) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"product_name": product.Name,
			"category":     product.Category,
			"quantity":     product.Quantity,
			"price":        product.Price,
			"description":  product.Description,
			"updated_at":   time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// IncrementStock adds qty in a single UPDATE so concurrent restocks
// never lose updates. No row lock needed: there is no precondition.
func (r *productRepo) IncrementStock(id uint, qty int) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
