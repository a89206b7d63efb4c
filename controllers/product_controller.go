package controllers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
	"github.com/sarthakm19/product-catalog-service/services"
)

const (
	defaultPage = 0
	defaultSize = 20
	defaultSort = "code,asc"
)

// ProductService is the slice of the product service the controller needs.
type ProductService interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	CreateBatch(ctx context.Context, products []*models.Product) ([]*models.Product, error)
	GetByCode(ctx context.Context, code string) (*models.Product, error)
	List(ctx context.Context, query services.ListQuery) ([]models.Product, int64, error)
	Update(ctx context.Context, code string, product *models.Product) (*models.Product, error)
	Patch(ctx context.Context, code string, patch services.PatchProduct) (*models.Product, error)
	Delete(ctx context.Context, code string) error
	DeleteBatch(ctx context.Context, codes []string) error
}

// ProductController adapts HTTP requests to product service calls.
type ProductController struct {
	service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /products with pagination, sorting and filters.
func (pc *ProductController) List(c *gin.Context) {
	query := services.ListQuery{
		Page: defaultPage,
		Size: defaultSize,
	}

	if pStr := c.Query("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil && p >= 0 {
			query.Page = p
		}
	}
	if sStr := c.Query("size"); sStr != "" {
		if s, err := strconv.Atoi(sStr); err == nil && s > 0 {
			query.Size = s
		}
	}

	query.SortField, query.SortDesc = parseSort(c.DefaultQuery("sort", defaultSort))

	if categoryCode := c.Query("categoryCode"); categoryCode != "" {
		query.CategoryCode = &categoryCode
	}
	if stockStr := c.Query("inStock"); stockStr != "" {
		if inStock, err := strconv.ParseBool(stockStr); err == nil {
			query.InStock = &inStock
		}
	}

	products, total, err := pc.service.List(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		apperrors.Respond(c, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.Size)))
	c.JSON(http.StatusOK, ProductPageResponse{
		Content:       toProductResponses(products),
		Page:          query.Page,
		Size:          query.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          query.Page >= totalPages-1,
	})
}

// GetByCode handles GET /products/:code.
func (pc *ProductController) GetByCode(c *gin.Context) {
	code := c.Param("code")

	product, err := pc.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /products.
func (pc *ProductController) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}
	if err := validatePayload(&req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	created, err := pc.service.Create(c.Request.Context(), req.toModel())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// CreateBatch handles POST /products/batch.
func (pc *ProductController) CreateBatch(c *gin.Context) {
	var reqs []CreateProductRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}
	for i := range reqs {
		if err := validatePayload(&reqs[i]); err != nil {
			apperrors.Respond(c, err)
			return
		}
	}

	products := make([]*models.Product, len(reqs))
	for i := range reqs {
		products[i] = reqs[i].toModel()
	}

	created, err := pc.service.CreateBatch(c.Request.Context(), products)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	responses := make([]ProductResponse, len(created))
	for i, p := range created {
		responses[i] = toProductResponse(p)
	}
	c.JSON(http.StatusCreated, responses)
}

// Update handles PUT /products/:code, replacing all mutable fields.
func (pc *ProductController) Update(c *gin.Context) {
	code := c.Param("code")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}
	if err := validatePayload(&req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	updated, err := pc.service.Update(c.Request.Context(), code, req.toModel())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

// Patch handles PATCH /products/:code, applying only the fields present.
func (pc *ProductController) Patch(c *gin.Context) {
	code := c.Param("code")

	var req PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}

	patched, err := pc.service.Patch(c.Request.Context(), code, req.toPatch())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(patched))
}

// Delete handles DELETE /products/:code.
func (pc *ProductController) Delete(c *gin.Context) {
	code := c.Param("code")

	if err := pc.service.Delete(c.Request.Context(), code); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBatch handles DELETE /products/batch with a JSON array of codes.
func (pc *ProductController) DeleteBatch(c *gin.Context) {
	var codes []string
	if err := c.ShouldBindJSON(&codes); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}

	if err := pc.service.DeleteBatch(c.Request.Context(), codes); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseSort splits a "field,direction" sort parameter. Any direction other
// than "desc" sorts ascending.
func parseSort(sort string) (field string, desc bool) {
	parts := strings.SplitN(sort, ",", 2)
	field = strings.TrimSpace(parts[0])
	if field == "" {
		field = "code"
	}
	if len(parts) > 1 {
		desc = strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
	}
	return field, desc
}
