package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sarthakm19/product-catalog-service/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, code string, categoryCode *string, inStock bool) {
	t.Helper()
	product := models.Product{
		Code:         code,
		Name:         "Product " + code,
		BasePrice:    models.Price{Amount: decimal.NewFromFloat(10), Currency: "USD"},
		InStock:      inStock,
		CategoryCode: categoryCode,
	}
	require.NoError(t, db.Create(&product).Error)
}

func seedCategory(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Category{Code: code, Name: code}).Error)
}

func TestFindByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "electronics")
	cat := "electronics"
	seedProduct(t, db, "P1", &cat, true)
	require.NoError(t, db.Create(&models.Review{ID: uuid.New(), Comment: "great", Rating: 5, ProductCode: "P1"}).Error)

	product, err := repo.FindByCode(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", product.Code)
	require.NotNil(t, product.Category)
	assert.Equal(t, "electronics", product.Category.Code)
	require.Len(t, product.Reviews, 1)
	assert.Equal(t, 5, product.Reviews[0].Rating)
}

func TestFindByCodeNotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	_, err := repo.FindByCode(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExistsByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "P1", nil, true)

	exists, err := repo.ExistsByCode(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "P2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindFiltered(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "electronics")
	seedCategory(t, db, "books")
	electronics, books := "electronics", "books"

	seedProduct(t, db, "E1", &electronics, true)
	seedProduct(t, db, "E2", &electronics, false)
	seedProduct(t, db, "B1", &books, true)
	seedProduct(t, db, "N1", nil, false)

	page := PageRequest{Page: 0, Size: 20, SortField: "code"}
	truth := true

	testCases := []struct {
		name          string
		categoryCode  *string
		inStock       *bool
		expectedCodes []string
	}{
		{"no filters", nil, nil, []string{"B1", "E1", "E2", "N1"}},
		{"category only", &electronics, nil, []string{"E1", "E2"}},
		{"stock only", nil, &truth, []string{"B1", "E1"}},
		{"category and stock", &electronics, &truth, []string{"E1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products, total, err := repo.FindFiltered(ctx, tc.categoryCode, tc.inStock, page)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.expectedCodes)), total)

			codes := make([]string, len(products))
			for i, p := range products {
				codes[i] = p.Code
			}
			assert.Equal(t, tc.expectedCodes, codes)
		})
	}
}

func TestFindFilteredPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedProduct(t, db, fmt.Sprintf("P%d", i), nil, true)
	}

	products, total, err := repo.FindFiltered(ctx, nil, nil, PageRequest{Page: 1, Size: 2, SortField: "code"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "total counts all matches, not just the page")
	require.Len(t, products, 2)
	assert.Equal(t, "P2", products[0].Code)
	assert.Equal(t, "P3", products[1].Code)

	products, _, err = repo.FindFiltered(ctx, nil, nil, PageRequest{Page: 2, Size: 2, SortField: "code"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P4", products[0].Code)

	products, total, err = repo.FindFiltered(ctx, nil, nil, PageRequest{Page: 9, Size: 2, SortField: "code"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, products, "page beyond the data is empty, not an error")
}

func TestFindFilteredSorting(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Product{
		Code: "A", Name: "Zebra",
		BasePrice: models.Price{Amount: decimal.NewFromFloat(30), Currency: "USD"},
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Code: "B", Name: "Apple",
		BasePrice: models.Price{Amount: decimal.NewFromFloat(10), Currency: "USD"},
	}).Error)

	products, _, err := repo.FindFiltered(ctx, nil, nil, PageRequest{Size: 20, SortField: "name"})
	require.NoError(t, err)
	assert.Equal(t, "B", products[0].Code)

	products, _, err = repo.FindFiltered(ctx, nil, nil, PageRequest{Size: 20, SortField: "basePrice", SortDesc: true})
	require.NoError(t, err)
	assert.Equal(t, "A", products[0].Code)
}

func TestFindFilteredRejectsUnknownSortField(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	seedProduct(t, db, "P2", nil, true)
	seedProduct(t, db, "P1", nil, true)

	// An unrecognized sort field must not reach the SQL; it degrades to code.
	products, _, err := repo.FindFiltered(context.Background(), nil, nil, PageRequest{
		Size:      20,
		SortField: "code; DROP TABLE products",
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].Code)
}

func TestDeleteByCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "P1", nil, true)
	require.NoError(t, repo.DeleteByCode(ctx, "P1"))

	exists, err := repo.ExistsByCode(ctx, "P1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveUpdatesExistingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "P1", nil, true)

	product, err := repo.FindByCode(ctx, "P1")
	require.NoError(t, err)

	product.Name = "Renamed"
	product.InStock = false
	require.NoError(t, repo.Save(ctx, product))

	reloaded, err := repo.FindByCode(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", reloaded.Name)
	assert.False(t, reloaded.InStock)
}
