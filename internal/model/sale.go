package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed sale. SalePrice is the
// total for the transaction (unit price * quantity at time of sale).
//
// ProductID is a soft reference: deleting a product keeps its sale
// history intact, so there is no foreign key constraint here.
type Sale struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ProductID    uint            `gorm:"index;not null" json:"product_id"`
	QuantitySold int             `gorm:"not null" json:"quantity_sold" validate:"required,gt=0"`
	SalePrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sale_price"`
	SaleDate     time.Time       `gorm:"autoCreateTime" json:"sale_date"`
}
