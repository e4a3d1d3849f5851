package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mondaymerch/merch-api/internal/entity"
)

// Timestamps are rendered in the store-native layout rather than RFC 3339 so
// responses stay byte-compatible with the previous service.
const timestampLayout = "2006-01-02 15:04:05"

// ProductResponse is a product as exposed over HTTP.
type ProductResponse struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category_id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	StockQuantity int             `json:"stock_quantity"`
	SKU           *string         `json:"sku"`
	ImageURL      *string         `json:"image_url"`
	CreatedAt     string          `json:"created_at"`
}

// ProductListResponse is the paginated product listing payload. Total counts
// the full matching set independent of the requested page.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Products []ProductResponse `json:"products"`
}

// NewProductResponse maps a product entity onto its transport shape.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		PricePerUnit:  p.PricePerUnit,
		StockQuantity: p.StockQuantity,
		SKU:           p.SKU,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt.Format(timestampLayout),
	}
}

// NewProductListResponse maps a page of products plus its count metadata.
func NewProductListResponse(products []entity.Product, total, page, pageSize int) ProductListResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return ProductListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Products: out,
	}
}
