package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Category groups products (e.g. Apparel, Drinkware). Categories are seeded
// once and never mutated through the API.
type Category struct {
	bun.BaseModel `bun:"table:categories"`

	ID          int64     `bun:",pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Description *string   `bun:"description"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
