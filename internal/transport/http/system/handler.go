package system

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/mondaymerch/merch-api/internal/config"
	"github.com/mondaymerch/merch-api/internal/dto"
	service "github.com/mondaymerch/merch-api/internal/service/product"
)

const apiVersion = "1.0.0"

var httpTracer = otel.Tracer("github.com/mondaymerch/merch-api/transport/http/system")

// Handler serves the service metadata and health endpoints.
type Handler struct {
	products    *service.Service
	serviceName string
}

// NewHandler constructs a system Handler.
func NewHandler(products *service.Service, cfg config.Config) *Handler {
	return &Handler{products: products, serviceName: cfg.Observability.ServiceName}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/", h.root)
	e.GET("/health", h.health)
}

func (h *Handler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ServiceInfo{
		Message: "Welcome to Monday Merch API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"products":   "/products",
			"categories": "/categories",
			"health":     "/health",
		},
	})
}

// health runs one trivial product count. A failing store never propagates;
// it degrades into a structured 503 payload.
func (h *Handler) health(c echo.Context) error {
	ctx, span := httpTracer.Start(c.Request().Context(), "system.health")
	defer span.End()

	count, err := h.products.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, dto.UnhealthyResponse{
			Status: "unhealthy",
			Error:  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        "healthy",
		Database:      "connected",
		ProductsCount: count,
	})
}
