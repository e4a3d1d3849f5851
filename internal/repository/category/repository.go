package category

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mondaymerch/merch-api/internal/database"
	"github.com/mondaymerch/merch-api/internal/entity"
)

var repoTracer = otel.Tracer("github.com/mondaymerch/merch-api/repository/category")

// WithProductCount is a category row joined with its product count. The
// count is zero for categories no product references.
type WithProductCount struct {
	ID           int64   `bun:"id"`
	Name         string  `bun:"name"`
	Description  *string `bun:"description"`
	ProductCount int     `bun:"product_count"`
}

// Repository encapsulates read access for categories.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// ListWithProductCounts returns every category with its product count, by id
// ascending. The join is an outer one so empty categories still appear.
func (r *Repository) ListWithProductCounts(ctx context.Context) ([]WithProductCount, error) {
	ctx, span := repoTracer.Start(ctx, "CategoryRepository.ListWithProductCounts")
	defer span.End()

	var categories []WithProductCount
	err := r.reader.NewSelect().
		Model((*entity.Category)(nil)).
		ColumnExpr("category.id, category.name, category.description").
		ColumnExpr("count(p.id) AS product_count").
		Join("LEFT JOIN products AS p ON p.category_id = category.id").
		GroupExpr("category.id, category.name, category.description").
		OrderExpr("category.id ASC").
		Scan(ctx, &categories)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("categories", len(categories)))
	return categories, nil
}
