package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
	"github.com/sarthakm19/product-catalog-service/repository"
)

// ProductStore is the slice of the product repository the service needs.
type ProductStore interface {
	FindByCode(ctx context.Context, code string) (*models.Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindFiltered(ctx context.Context, categoryCode *string, inStock *bool, page repository.PageRequest) ([]models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	DeleteByCode(ctx context.Context, code string) error
}

// CategoryStore resolves categories by code.
type CategoryStore interface {
	FindByCode(ctx context.Context, code string) (*models.Category, error)
}

// CatalogStore resolves catalogs by code.
type CatalogStore interface {
	FindByCode(ctx context.Context, code string) (*models.Catalog, error)
}

// ListQuery describes a filtered, paged product listing.
type ListQuery struct {
	CategoryCode *string
	InStock      *bool
	Page         int
	Size         int
	SortField    string
	SortDesc     bool
}

// PatchProduct carries a partial update; nil fields are left untouched.
type PatchProduct struct {
	Name             *string
	Description      *string
	BasePrice        *models.Price
	InStock          *bool
	StockKeepingUnit *string
	CategoryCode     *string
	CatalogCode      *string
}

// ProductService orchestrates validation, uniqueness checks, relationship
// resolution and persistence for products.
type ProductService struct {
	db         *gorm.DB
	products   ProductStore
	categories CategoryStore
	catalogs   CatalogStore
	cache      *CacheManager
}

func NewProductService(db *gorm.DB, products ProductStore, categories CategoryStore, catalogs CatalogStore, cache *CacheManager) *ProductService {
	return &ProductService{
		db:         db,
		products:   products,
		categories: categories,
		catalogs:   catalogs,
		cache:      cache,
	}
}

// Create persists a new product. The payload must pass the business rules
// and the code must not already exist.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	zap.L().Info("Creating product", zap.String("code", product.Code))

	if !product.Valid() {
		return nil, apperrors.NewValidation("Invalid product data")
	}

	exists, err := s.products.ExistsByCode(ctx, product.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewAlreadyExists("Product", "code", product.Code)
	}

	s.resolveRelations(ctx, product)

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.InvalidateProduct(ctx, product.Code)
	zap.L().Info("Product created", zap.String("code", product.Code))
	return product, nil
}

// CreateBatch validates and existence-checks every item, then persists all
// of them in a single transaction. Any invalid or duplicate item fails the
// whole batch before anything is written.
func (s *ProductService) CreateBatch(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	zap.L().Info("Creating products", zap.Int("count", len(products)))

	for _, product := range products {
		if !product.Valid() {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid product data for code: %s", product.Code))
		}
		exists, err := s.products.ExistsByCode(ctx, product.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewAlreadyExists("Product", "code", product.Code)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txProducts := repository.NewProductRepository(tx)
		for _, product := range products {
			s.resolveRelations(ctx, product)
			if err := txProducts.Create(ctx, product); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		s.cache.InvalidateProduct(ctx, product.Code)
	}
	zap.L().Info("Products created", zap.Int("count", len(products)))
	return products, nil
}

// GetByCode fetches one product.
func (s *ProductService) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	if cached, ok := s.cache.GetProduct(ctx, code); ok {
		return cached, nil
	}

	product, err := s.products.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", "code", code)
		}
		return nil, err
	}

	s.cache.SetProductAsync(product)
	return product, nil
}

// List returns one page of products matching the query filters, plus the
// total match count.
func (s *ProductService) List(ctx context.Context, query ListQuery) ([]models.Product, int64, error) {
	if products, total, ok := s.cache.GetList(ctx, query); ok {
		return products, total, nil
	}

	page := repository.PageRequest{
		Page:      query.Page,
		Size:      query.Size,
		SortField: query.SortField,
		SortDesc:  query.SortDesc,
	}
	products, total, err := s.products.FindFiltered(ctx, query.CategoryCode, query.InStock, page)
	if err != nil {
		return nil, 0, err
	}

	s.cache.SetListAsync(query, products, total)
	return products, total, nil
}

// Update fully replaces the mutable fields of an existing product. The
// payload must pass the same business rules as a create.
func (s *ProductService) Update(ctx context.Context, code string, product *models.Product) (*models.Product, error) {
	zap.L().Info("Updating product", zap.String("code", code))

	product.Code = code
	if !product.Valid() {
		return nil, apperrors.NewValidation("Invalid product data")
	}

	existing, err := s.products.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", "code", code)
		}
		return nil, err
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.BasePrice = product.BasePrice
	existing.InStock = product.InStock
	existing.StockKeepingUnit = product.StockKeepingUnit
	existing.CategoryCode = product.CategoryCode
	existing.CatalogCode = product.CatalogCode
	s.resolveRelations(ctx, existing)

	// Drop stale preloaded objects; the codes are authoritative.
	existing.Category = nil
	existing.Catalog = nil

	if err := s.products.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.cache.InvalidateProduct(ctx, code)
	zap.L().Info("Product updated", zap.String("code", code))
	return existing, nil
}

// Patch applies only the fields present in the patch payload. The merged
// entity is not re-validated.
func (s *ProductService) Patch(ctx context.Context, code string, patch PatchProduct) (*models.Product, error) {
	zap.L().Info("Patching product", zap.String("code", code))

	existing, err := s.products.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Product", "code", code)
		}
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.BasePrice != nil {
		existing.BasePrice = *patch.BasePrice
	}
	if patch.InStock != nil {
		existing.InStock = *patch.InStock
	}
	if patch.StockKeepingUnit != nil {
		existing.StockKeepingUnit = *patch.StockKeepingUnit
	}
	if patch.CategoryCode != nil {
		existing.CategoryCode = patch.CategoryCode
		if _, err := s.categories.FindByCode(ctx, *patch.CategoryCode); err != nil {
			existing.CategoryCode = nil
		}
	}
	if patch.CatalogCode != nil {
		existing.CatalogCode = patch.CatalogCode
		if _, err := s.catalogs.FindByCode(ctx, *patch.CatalogCode); err != nil {
			existing.CatalogCode = nil
		}
	}

	existing.Category = nil
	existing.Catalog = nil

	if err := s.products.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.cache.InvalidateProduct(ctx, code)
	zap.L().Info("Product patched", zap.String("code", code))
	return existing, nil
}

// Delete removes one product by code.
func (s *ProductService) Delete(ctx context.Context, code string) error {
	zap.L().Info("Deleting product", zap.String("code", code))

	exists, err := s.products.ExistsByCode(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Product", "code", code)
	}

	if err := s.products.DeleteByCode(ctx, code); err != nil {
		return err
	}

	s.cache.InvalidateProduct(ctx, code)
	zap.L().Info("Product deleted", zap.String("code", code))
	return nil
}

// DeleteBatch pre-validates that every code exists, then deletes them all
// in a single transaction.
func (s *ProductService) DeleteBatch(ctx context.Context, codes []string) error {
	zap.L().Info("Deleting products", zap.Int("count", len(codes)))

	for _, code := range codes {
		exists, err := s.products.ExistsByCode(ctx, code)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFound("Product", "code", code)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txProducts := repository.NewProductRepository(tx)
		for _, code := range codes {
			if err := txProducts.DeleteByCode(ctx, code); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, code := range codes {
		s.cache.InvalidateProduct(ctx, code)
	}
	zap.L().Info("Products deleted", zap.Int("count", len(codes)))
	return nil
}

// resolveRelations verifies the category and catalog codes on the product.
// A code that does not resolve is silently cleared rather than treated as
// an error.
func (s *ProductService) resolveRelations(ctx context.Context, product *models.Product) {
	if product.CategoryCode != nil {
		if _, err := s.categories.FindByCode(ctx, *product.CategoryCode); err != nil {
			product.CategoryCode = nil
		}
	}
	if product.CatalogCode != nil {
		if _, err := s.catalogs.FindByCode(ctx, *product.CatalogCode); err != nil {
			product.CatalogCode = nil
		}
	}
}
