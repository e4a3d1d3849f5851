package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mondaymerch/merch-api/internal/database"
	"github.com/mondaymerch/merch-api/internal/entity"
)

var repoTracer = otel.Tracer("github.com/mondaymerch/merch-api/repository/product")

// ErrNotFound is returned when a product is missing.
var ErrNotFound = errors.New("product not found")

// ListFilter carries the optional listing predicates plus pagination. A nil
// Category means no category constraint; an empty Search means no search
// constraint. A Category of 0 is applied as-is and matches nothing under the
// shipped seed data.
type ListFilter struct {
	Search   string
	Category *int64
	Page     int
	PageSize int
}

// Offset converts the 1-indexed page into a row offset.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Repository encapsulates read access for products.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// List returns one page of products matching the filter plus the count of
// the full matching set. The count query runs before pagination is applied
// so total never reflects the LIMIT clause.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]entity.Product, int, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.List", trace.WithAttributes(
		attribute.Int("page", filter.Page),
		attribute.Int("page_size", filter.PageSize),
	))
	defer span.End()

	total, err := applyFilter(r.reader.NewSelect().Model((*entity.Product)(nil)), filter).Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return nil, 0, err
	}

	products := make([]entity.Product, 0, filter.PageSize)
	err = applyFilter(r.reader.NewSelect().Model(&products), filter).
		OrderExpr("created_at DESC, id ASC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("total", total))
	return products, total, nil
}

// GetByID fetches a product by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.GetByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product := new(entity.Product)
	err := r.reader.NewSelect().Model(product).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return product, nil
}

// Count returns the total number of products. The health probe uses it as a
// trivial reachability check.
func (r *Repository) Count(ctx context.Context) (int, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Count")
	defer span.End()

	count, err := r.reader.NewSelect().Model((*entity.Product)(nil)).Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
		return 0, err
	}
	return count, nil
}

// applyFilter appends the conjunctive listing predicates. Filter values ride
// as bind parameters, never as query text.
func applyFilter(q *bun.SelectQuery, filter ListFilter) *bun.SelectQuery {
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("LOWER(name) LIKE LOWER(?)", pattern).
				WhereOr("LOWER(description) LIKE LOWER(?)", pattern)
		})
	}
	if filter.Category != nil {
		q = q.Where("category_id = ?", *filter.Category)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
