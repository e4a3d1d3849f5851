package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

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

	e := echo.New()
	Register(e, NewHandler(svc, config.Config{}))
	return e, mock
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Welcome to Monday Merch API", body.Message)
	assert.Equal(t, "/products", body.Endpoints["products"])
}

func TestHealthHealthy(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	rec := doRequest(e, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status        string `json:"status"`
		Database      string `json:"database"`
		ProductsCount int    `json:"products_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "connected", body.Database)
	assert.Equal(t, 4, body.ProductsCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthUnreachableStore(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

	rec := doRequest(e, "/health")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Contains(t, body.Error, "connection refused")

	require.NoError(t, mock.ExpectationsWereMet())
}
