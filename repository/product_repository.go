package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sarthakm19/product-catalog-service/models"
)

// PageRequest describes pagination and sorting for list queries. Page is
// zero-indexed.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	SortDesc  bool
}

// productSortColumns whitelists the sortable fields; anything else falls
// back to code so user input never reaches ORDER BY verbatim.
var productSortColumns = map[string]string{
	"code":             "code",
	"name":             "name",
	"basePrice":        "base_price_value",
	"isInStock":        "is_in_stock",
	"stockKeepingUnit": "stock_keeping_unit",
	"createdAt":        "created_at",
}

func (p PageRequest) orderClause() string {
	column, ok := productSortColumns[p.SortField]
	if !ok {
		column = "code"
	}
	direction := "asc"
	if p.SortDesc {
		direction = "desc"
	}
	return column + " " + direction
}

// ProductRepository is the persistence gateway for products.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByCode loads a product with its category, catalog and reviews.
// Returns gorm.ErrRecordNotFound when the code is absent.
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Catalog").
		Preload("Reviews").
		Where("code = ?", code).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return count > 0, nil
}

// FindFiltered returns one page of products matching the supplied filters
// plus the total match count. The filter combinations are fixed: none,
// category only, stock only, or both.
func (r *ProductRepository) FindFiltered(ctx context.Context, categoryCode *string, inStock *bool, page PageRequest) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	switch {
	case categoryCode != nil && inStock != nil:
		query = query.Where("category_code = ? AND is_in_stock = ?", *categoryCode, *inStock)
	case categoryCode != nil:
		query = query.Where("category_code = ?", *categoryCode)
	case inStock != nil:
		query = query.Where("is_in_stock = ?", *inStock)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Order(page.orderClause()).
		Offset(page.Page * page.Size).
		Limit(page.Size).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *ProductRepository) DeleteByCode(ctx context.Context, code string) error {
	if err := r.db.WithContext(ctx).Where("code = ?", code).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
