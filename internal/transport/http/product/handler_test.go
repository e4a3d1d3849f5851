package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"github.com/mondaymerch/merch-api/internal/config"
	"github.com/mondaymerch/merch-api/internal/database"
	repo "github.com/mondaymerch/merch-api/internal/repository/product"
	service "github.com/mondaymerch/merch-api/internal/service/product"
)

var productColumns = []string{
	"id", "category_id", "name", "description", "price_per_unit",
	"stock_quantity", "sku", "image_url", "created_at",
}

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	conns := &database.Connections{Writer: db, Reader: db}
	svc := service.NewService(service.Params{
		Repository: repo.NewRepository(conns),
		Logger:     zap.NewNop(),
	})

	cfg := config.Config{Catalog: config.Catalog{DefaultPageSize: 10, MaxPageSize: 100}}
	e := echo.New()
	Register(e, NewHandler(svc, cfg))
	return e, mock
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListDefaults(t *testing.T) {
	e, mock := newTestServer(t)
	created := time.Date(2024, 12, 13, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ORDER BY created_at DESC, id ASC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(2, 1, "Premium Hoodie", "A comfortable hoodie", "47.85", 50, "MM-HOOD-001", nil, created).
			AddRow(3, 1, "Trucker Cap", "A premium cap", "9.95", 75, "MM-CAP-001", nil, created))

	rec := doRequest(e, "/products?category=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
		Products []struct {
			ID           int64   `json:"id"`
			CategoryID   int64   `json:"category_id"`
			Name         string  `json:"name"`
			PricePerUnit string  `json:"price_per_unit"`
			SKU          *string `json:"sku"`
			ImageURL     *string `json:"image_url"`
			CreatedAt    string  `json:"created_at"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 10, body.PageSize)
	require.Len(t, body.Products, 2)
	assert.Equal(t, "Premium Hoodie", body.Products[0].Name)
	assert.Equal(t, "47.85", body.Products[0].PricePerUnit)
	assert.Nil(t, body.Products[0].ImageURL)
	assert.Equal(t, "2024-12-13 10:00:00", body.Products[0].CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyResultIsSuccess(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM "products"`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	rec := doRequest(e, "/products?search=nonexistent")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total    int   `json:"total"`
		Products []any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Zero(t, body.Total)
	assert.NotNil(t, body.Products)
	assert.Empty(t, body.Products)
}

func TestListValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"zero page", "/products?page=0"},
		{"negative page", "/products?page=-3"},
		{"non-integer page", "/products?page=abc"},
		{"zero page_size", "/products?page_size=0"},
		{"oversized page_size", "/products?page_size=101"},
		{"non-integer page_size", "/products?page_size=ten"},
		{"negative category", "/products?category=-1"},
		{"non-integer category", "/products?category=apparel"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, mock := newTestServer(t)

			// validation fails at the boundary, before any store access
			rec := doRequest(e, tc.target)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var body struct {
				Error struct {
					Kind string `json:"kind"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "unprocessable_entity", body.Error.Kind)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListEmptySearchMeansNoFilter(t *testing.T) {
	e, mock := newTestServer(t)

	// an explicitly empty search parameter must not emit a LIKE clause
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" AS "product"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`FROM "products"`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	rec := doRequest(e, "/products?search=")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	e, mock := newTestServer(t)
	created := time.Date(2024, 12, 13, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE \(id = 4\)`).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(4, 3, "Ceramic Compact Mug", "A ceramic mug", "6.32", 200, "MM-MUG-001", nil, created))

	rec := doRequest(e, "/products/4")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID           int64  `json:"id"`
		CategoryID   int64  `json:"category_id"`
		Name         string `json:"name"`
		PricePerUnit string `json:"price_per_unit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.ID)
	assert.Equal(t, int64(3), body.CategoryID)
	assert.Equal(t, "6.32", body.PricePerUnit)
}

func TestGetByIDNotFound(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(`FROM "products"`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	rec := doRequest(e, "/products/999")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Kind)
	assert.Equal(t, "Product not found", body.Error.Message)
}

func TestGetByIDRejectsNonInteger(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, "/products/not-a-number")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
