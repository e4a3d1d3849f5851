package product

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mondaymerch/merch-api/internal/entity"
	repo "github.com/mondaymerch/merch-api/internal/repository/product"
	"github.com/mondaymerch/merch-api/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/mondaymerch/merch-api/service/product")

// Service exposes catalog reads over the product repository. All operations
// are read-only.
type Service struct {
	repo   *repo.Repository
	logger *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{repo: p.Repository, logger: p.Logger}
}

// List returns one page of products matching the filter plus the full match
// count. It assumes the transport boundary already validated pagination.
func (s *Service) List(ctx context.Context, filter repo.ListFilter) ([]entity.Product, int, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List", trace.WithAttributes(
		attribute.Int("page", filter.Page),
		attribute.Int("page_size", filter.PageSize),
	))
	defer span.End()

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product listing failed", zap.Error(err))
		return nil, 0, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}
	return products, total, nil
}

// Get retrieves a product by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Get", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("Product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product lookup failed", zap.Int64("id", id), zap.Error(err))
		return nil, errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}
	return product, nil
}

// Count reports the total product row count. The raw store error comes back
// unwrapped so the health probe can surface its description.
func (s *Service) Count(ctx context.Context) (int, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Count")
	defer span.End()

	count, err := s.repo.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Warn("product count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}
