package category

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/mondaymerch/merch-api/internal/dto"
	"github.com/mondaymerch/merch-api/internal/presentation/http/response"
	service "github.com/mondaymerch/merch-api/internal/service/category"
)

var httpTracer = otel.Tracer("github.com/mondaymerch/merch-api/transport/http/category")

// Handler exposes category endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a category Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/categories", h.list)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "categories.list")
	defer span.End()

	categories, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{
			ID:           cat.ID,
			Name:         cat.Name,
			Description:  cat.Description,
			ProductCount: cat.ProductCount,
		})
	}

	return b.WithData(dto.CategoryListResponse{Categories: out}).Build()
}
