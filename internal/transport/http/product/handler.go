package product

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mondaymerch/merch-api/internal/config"
	"github.com/mondaymerch/merch-api/internal/dto"
	"github.com/mondaymerch/merch-api/internal/presentation/http/response"
	repo "github.com/mondaymerch/merch-api/internal/repository/product"
	service "github.com/mondaymerch/merch-api/internal/service/product"
	"github.com/mondaymerch/merch-api/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/mondaymerch/merch-api/transport/http/product")

// Handler exposes product endpoints over HTTP.
type Handler struct {
	svc             *service.Service
	defaultPageSize int
	maxPageSize     int
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service, cfg config.Config) *Handler {
	return &Handler{
		svc:             svc,
		defaultPageSize: cfg.Catalog.DefaultPageSize,
		maxPageSize:     cfg.Catalog.MaxPageSize,
	}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.getByID)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	filter, err := h.parseListFilter(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list", trace.WithAttributes(
		attribute.Int("page", filter.Page),
		attribute.Int("page_size", filter.PageSize),
	))
	defer span.End()

	products, total, err := h.svc.List(ctx, filter)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewProductListResponse(products, total, filter.Page, filter.PageSize)).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.Unprocessable("product id must be an integer", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.getByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.NewProductResponse(product)).Build()
}

// parseListFilter validates the listing query parameters before any store
// access. An empty search parameter carries no constraint; a supplied
// category is always applied, including 0.
func (h *Handler) parseListFilter(c echo.Context) (repo.ListFilter, error) {
	filter := repo.ListFilter{
		Search:   c.QueryParam("search"),
		Page:     1,
		PageSize: h.defaultPageSize,
	}

	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repo.ListFilter{}, errorbank.Unprocessable(
				"page must be an integer greater than or equal to 1",
				errorbank.WithDetail("page", raw),
			)
		}
		filter.Page = v
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > h.maxPageSize {
			return repo.ListFilter{}, errorbank.Unprocessable(
				fmt.Sprintf("page_size must be an integer between 1 and %d", h.maxPageSize),
				errorbank.WithDetail("page_size", raw),
			)
		}
		filter.PageSize = v
	}

	if raw := c.QueryParam("category"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return repo.ListFilter{}, errorbank.Unprocessable(
				"category must be a non-negative integer",
				errorbank.WithDetail("category", raw),
			)
		}
		filter.Category = &v
	}

	return filter, nil
}
