package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price is a monetary amount with a 3-letter currency code, embedded into
// the product row.
type Price struct {
	Amount   decimal.Decimal `gorm:"type:decimal(19,2);column:base_price_value" json:"value"`
	Currency string          `gorm:"size:3;column:base_price_currency" json:"currency"`
}

// Valid reports whether the price is usable: non-negative amount and a
// 3-letter currency code.
func (p Price) Valid() bool {
	return p.Amount.GreaterThanOrEqual(decimal.Zero) && len(p.Currency) == 3
}

// Product is a catalog item keyed by its human-assigned code. Category and
// catalog membership are stored as code foreign keys; the object fields are
// only populated when explicitly preloaded.
type Product struct {
	Code             string    `gorm:"primaryKey;size:64"`
	Name             string    `gorm:"not null"`
	Description      string    `gorm:"size:1000"`
	BasePrice        Price     `gorm:"embedded"`
	InStock          bool      `gorm:"column:is_in_stock"`
	StockKeepingUnit string    `gorm:"column:stock_keeping_unit"`
	CategoryCode     *string   `gorm:"size:64;index"`
	Category         *Category `gorm:"foreignKey:CategoryCode;references:Code"`
	CatalogCode      *string   `gorm:"size:64;index"`
	Catalog          *Catalog  `gorm:"foreignKey:CatalogCode;references:Code;constraint:OnDelete:CASCADE"`
	Reviews          []Review  `gorm:"foreignKey:ProductCode;references:Code;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Product) TableName() string {
	return "products"
}

// Valid reports whether the product satisfies the business rules for
// persistence: non-blank code and name, valid base price.
func (p *Product) Valid() bool {
	return strings.TrimSpace(p.Code) != "" && strings.TrimSpace(p.Name) != "" && p.BasePrice.Valid()
}

// Purchasable reports whether the product can currently be bought.
func (p *Product) Purchasable() bool {
	return p.InStock && p.BasePrice.Valid()
}
