package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/sarthakm19/product-catalog-service/models"
	"github.com/sarthakm19/product-catalog-service/services"
)

// PriceDto is the wire shape of a price.
type PriceDto struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// CreateProductRequest is the payload for creating a product. isInStock
// defaults to true when omitted.
type CreateProductRequest struct {
	Code             string    `json:"code" validate:"required"`
	Name             string    `json:"name" validate:"required"`
	Description      string    `json:"description"`
	BasePrice        *PriceDto `json:"basePrice" validate:"required"`
	IsInStock        *bool     `json:"isInStock"`
	StockKeepingUnit string    `json:"stockKeepingUnit"`
	CategoryCode     *string   `json:"categoryCode"`
	CatalogCode      *string   `json:"catalogCode"`
}

// UpdateProductRequest is the full-replace payload; every mutable field is
// required to be meaningful, enforced by the service's validity check.
type UpdateProductRequest struct {
	Name             string    `json:"name" validate:"required"`
	Description      string    `json:"description"`
	BasePrice        *PriceDto `json:"basePrice" validate:"required"`
	IsInStock        *bool     `json:"isInStock"`
	StockKeepingUnit string    `json:"stockKeepingUnit"`
	CategoryCode     *string   `json:"categoryCode"`
	CatalogCode      *string   `json:"catalogCode"`
}

// PatchProductRequest is the partial-update payload; absent fields are
// left untouched.
type PatchProductRequest struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	BasePrice        *PriceDto `json:"basePrice"`
	IsInStock        *bool     `json:"isInStock"`
	StockKeepingUnit *string   `json:"stockKeepingUnit"`
	CategoryCode     *string   `json:"categoryCode"`
	CatalogCode      *string   `json:"catalogCode"`
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	BasePrice        PriceDto `json:"basePrice"`
	IsInStock        bool     `json:"isInStock"`
	StockKeepingUnit string   `json:"stockKeepingUnit"`
	CategoryCode     *string  `json:"categoryCode"`
	CatalogCode      *string  `json:"catalogCode"`
}

// ProductPageResponse is one page of products with pagination metadata.
type ProductPageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Last          bool              `json:"last"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is a successful login result.
type LoginResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresIn int64  `json:"expiresIn"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	ParentCode  *string `json:"parentCode"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentCode  *string `json:"parentCode"`
}

// CatalogResponse is the wire shape of a catalog.
type CatalogResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (r *CreateProductRequest) toModel() *models.Product {
	inStock := true
	if r.IsInStock != nil {
		inStock = *r.IsInStock
	}

	product := &models.Product{
		Code:             r.Code,
		Name:             r.Name,
		Description:      r.Description,
		InStock:          inStock,
		StockKeepingUnit: r.StockKeepingUnit,
		CategoryCode:     r.CategoryCode,
		CatalogCode:      r.CatalogCode,
	}
	if r.BasePrice != nil {
		product.BasePrice = models.Price{Amount: r.BasePrice.Value, Currency: r.BasePrice.Currency}
	}
	return product
}

func (r *UpdateProductRequest) toModel() *models.Product {
	inStock := true
	if r.IsInStock != nil {
		inStock = *r.IsInStock
	}

	product := &models.Product{
		Name:             r.Name,
		Description:      r.Description,
		InStock:          inStock,
		StockKeepingUnit: r.StockKeepingUnit,
		CategoryCode:     r.CategoryCode,
		CatalogCode:      r.CatalogCode,
	}
	if r.BasePrice != nil {
		product.BasePrice = models.Price{Amount: r.BasePrice.Value, Currency: r.BasePrice.Currency}
	}
	return product
}

func (r *PatchProductRequest) toPatch() services.PatchProduct {
	patch := services.PatchProduct{
		Name:             r.Name,
		Description:      r.Description,
		InStock:          r.IsInStock,
		StockKeepingUnit: r.StockKeepingUnit,
		CategoryCode:     r.CategoryCode,
		CatalogCode:      r.CatalogCode,
	}
	if r.BasePrice != nil {
		patch.BasePrice = &models.Price{Amount: r.BasePrice.Value, Currency: r.BasePrice.Currency}
	}
	return patch
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		Code:             p.Code,
		Name:             p.Name,
		Description:      p.Description,
		BasePrice:        PriceDto{Value: p.BasePrice.Amount, Currency: p.BasePrice.Currency},
		IsInStock:        p.InStock,
		StockKeepingUnit: p.StockKeepingUnit,
		CategoryCode:     p.CategoryCode,
		CatalogCode:      p.CatalogCode,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = toProductResponse(&products[i])
	}
	return responses
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		ParentCode:  c.ParentCode,
	}
}

func toCatalogResponse(c *models.Catalog) CatalogResponse {
	return CatalogResponse{
		Code:    c.Code,
		Name:    c.Name,
		Version: string(c.Version),
	}
}
