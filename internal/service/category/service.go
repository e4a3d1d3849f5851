package category

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"

	repo "github.com/mondaymerch/merch-api/internal/repository/category"
	"github.com/mondaymerch/merch-api/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/mondaymerch/merch-api/service/category")

// Service exposes category reads.
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

// List returns every category with its product count.
func (s *Service) List(ctx context.Context) ([]repo.WithProductCount, error) {
	ctx, span := serviceTracer.Start(ctx, "CategoryService.List")
	defer span.End()

	categories, err := s.repo.ListWithProductCounts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("category listing failed", zap.Error(err))
		return nil, errorbank.Internal("failed to list categories", errorbank.WithCause(err))
	}
	return categories, nil
}
