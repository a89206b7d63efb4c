package models

import "time"

// CatalogVersion distinguishes the live catalog from the staged one.
type CatalogVersion string

const (
	CatalogVersionOnline CatalogVersion = "ONLINE"
	CatalogVersionStaged CatalogVersion = "STAGED"
)

// Catalog is a versioned container of products. Deleting a catalog cascades
// to its products.
type Catalog struct {
	Code      string         `gorm:"primaryKey;size:64"`
	Name      string         `gorm:"not null"`
	Version   CatalogVersion `gorm:"column:catalog_version;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Catalog) TableName() string {
	return "catalogs"
}
