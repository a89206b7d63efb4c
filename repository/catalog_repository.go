package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sarthakm19/product-catalog-service/models"
)

// CatalogRepository is the persistence gateway for catalogs.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindByCode(ctx context.Context, code string) (*models.Catalog, error) {
	var catalog models.Catalog
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&catalog).Error
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]models.Catalog, error) {
	var catalogs []models.Catalog
	if err := r.db.WithContext(ctx).Order("code asc").Find(&catalogs).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	return catalogs, nil
}
