package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// OrderItem is a line on an order. PriceAtPurchase snapshots the product
// price at order time and stays fixed even when the catalog price changes.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items"`

	ID              int64           `bun:",pk,autoincrement"`
	OrderID         int64           `bun:"order_id,notnull"`
	ProductID       int64           `bun:"product_id,notnull"`
	Quantity        int             `bun:"quantity,notnull"`
	PriceAtPurchase decimal.Decimal `bun:"price_at_purchase,notnull"`

	MerchPackNumber   *int `bun:"merch_pack_number"`
	SendToWarehouse   bool `bun:"send_to_warehouse"`
	WarehouseQuantity int  `bun:"warehouse_quantity"`
}
