package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Workflow decision values stored on orders. The original data models these
// as free-form strings; the constants cover the values used by seed data.
const (
	DecisionNow   = "decide_now"
	DecisionLater = "decide_later"
)

// Order is a purchase order together with its fulfilment decisions, shipping
// address, contact details, and monetary totals. TotalAmount is always at
// least Subtotal once the per-stage costs are added.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID          int64     `bun:",pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	OrderNumber *string   `bun:"order_number,unique"`
	OrderDate   time.Time `bun:"order_date,nullzero,notnull,default:CURRENT_TIMESTAMP"`
	Status      string    `bun:"status,nullzero,default:'pending'"`

	PackingDecision       *string `bun:"packing_decision"`
	PackingType           *string `bun:"packing_type"`
	WarehousingDecision   *string `bun:"warehousing_decision"`
	WarehousingOption     *string `bun:"warehousing_option"`
	WarehouseDistribution *string `bun:"warehouse_distribution"`
	ShippingDecision      *string `bun:"shipping_decision"`
	ShippingOption        *string `bun:"shipping_option"`

	ShippingAddressLine1 *string `bun:"shipping_address_line1"`
	ShippingAddressLine2 *string `bun:"shipping_address_line2"`
	ShippingCity         *string `bun:"shipping_city"`
	ShippingState        *string `bun:"shipping_state"`
	ShippingPostalCode   *string `bun:"shipping_postal_code"`
	ShippingCountry      *string `bun:"shipping_country"`

	ProjectType          *string    `bun:"project_type"`
	RequiredDeliveryDate *time.Time `bun:"required_delivery_date"`
	LogoFileURL          *string    `bun:"logo_file_url"`
	Notes                *string    `bun:"notes"`

	ContactCompany   *string `bun:"contact_company"`
	ContactFirstName *string `bun:"contact_first_name"`
	ContactLastName  *string `bun:"contact_last_name"`
	ContactEmail     *string `bun:"contact_email"`
	ContactPhone     *string `bun:"contact_phone"`

	Subtotal        decimal.Decimal `bun:"subtotal,notnull"`
	PackingCost     decimal.Decimal `bun:"packing_cost"`
	WarehousingCost decimal.Decimal `bun:"warehousing_cost"`
	ShippingCost    decimal.Decimal `bun:"shipping_cost"`
	TotalAmount     decimal.Decimal `bun:"total_amount,notnull"`
}
