package dto

// CategoryResponse is a category together with the number of products that
// reference it. Zero is a valid count.
type CategoryResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	ProductCount int     `json:"product_count"`
}

// CategoryListResponse wraps the exhaustive category listing.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
