package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Product is a catalog item. PricePerUnit is fixed-point with two fraction
// digits; StockQuantity never goes negative.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID            int64           `bun:",pk,autoincrement"`
	CategoryID    int64           `bun:"category_id,notnull"`
	Name          string          `bun:"name,notnull"`
	Description   *string         `bun:"description"`
	PricePerUnit  decimal.Decimal `bun:"price_per_unit,notnull"`
	StockQuantity int             `bun:"stock_quantity"`
	SKU           *string         `bun:"sku"`
	ImageURL      *string         `bun:"image_url"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
