package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/mondaymerch/merch-api/internal/database"
)

var productColumns = []string{
	"id", "category_id", "name", "description", "price_per_unit",
	"stock_quantity", "sku", "image_url", "created_at",
}

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := bun.NewDB(sqlDB, pgdialect.New())
	return NewRepository(&database.Connections{Writer: db, Reader: db}), mock
}

func productRow(rows *sqlmock.Rows, id, categoryID int64, name, description string, created time.Time) *sqlmock.Rows {
	return rows.AddRow(id, categoryID, name, description, "9.95", 10, "MM-TEST-001", nil, created)
}

func TestListCountsBeforePagination(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	// count query must run first and see no LIMIT clause
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT .+ FROM "products".+ORDER BY created_at DESC, id ASC LIMIT 10`).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), 1, 2, "Tissue Paper Sticker", "Seals tissue paper", now))

	products, total, err := repo.List(context.Background(), ListFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 42, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Tissue Paper Sticker", products[0].Name)
	assert.Equal(t, "9.95", products[0].PricePerUnit.StringFixed(2))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppliesOffsetMath(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	// page 3 with page_size 5 lands at offset 10
	mock.ExpectQuery(`LIMIT 5 OFFSET 10`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, total, err := repo.List(context.Background(), ListFilter{Page: 3, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, 12, total)
	assert.Empty(t, products)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListSearchFiltersNameOrDescription(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	like := `LOWER\(name\) LIKE LOWER\('%hoodie%'\)\) OR \(LOWER\(description\) LIKE LOWER\('%hoodie%'\)`
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" .*` + like).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "products" .*` + like).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), 2, 1, "Premium Hoodie", "Comfortable hoodie", now))

	products, total, err := repo.List(context.Background(), ListFilter{Search: "hoodie", Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Premium Hoodie", products[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersAreConjunctive(t *testing.T) {
	repo, mock := newTestRepo(t)

	both := `LIKE LOWER\('%cap%'\).+AND \(category_id = 1\)`
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" .*` + both).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "products" .*` + both).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), 3, 1, "Trucker Cap", "Premium cap", time.Now()))

	category := int64(1)
	products, total, err := repo.List(context.Background(), ListFilter{
		Search:   "cap",
		Category: &category,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, products, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEscapesLikeMetacharacters(t *testing.T) {
	repo, mock := newTestRepo(t)

	// %, _ and \ in the search term must not act as wildcards
	escaped := `%100\\% cotton\\_v2%`
	mock.ExpectQuery(escaped).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(escaped).
		WillReturnRows(sqlmock.NewRows(productColumns))

	_, total, err := repo.List(context.Background(), ListFilter{Search: "100% cotton_v2", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageBeyondLastKeepsTotal(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`LIMIT 10 OFFSET 90`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, total, err := repo.List(context.Background(), ListFilter{Page: 10, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 4, total)
	assert.Empty(t, products)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM "products" .*WHERE \(id = 4\)`).
		WillReturnRows(productRow(sqlmock.NewRows(productColumns), 4, 3, "Ceramic Compact Mug", "Ceramic mug", now))

	product, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, int64(4), product.ID)
	assert.Equal(t, int64(3), product.CategoryID)
	require.NotNil(t, product.Description)
	assert.Equal(t, "Ceramic mug", *product.Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM "products"`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDPropagatesStoreFault(t *testing.T) {
	repo, mock := newTestRepo(t)

	storeErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .+ FROM "products"`).WillReturnError(storeErr)

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, mock.ExpectationsWereMet())
}
