package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry with its current stock level.
// Quantity never goes below zero; the decrement statement in the
// sale repository enforces that at the storage layer.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name" validate:"required"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Value is the stock valuation of this product (price * quantity).
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
