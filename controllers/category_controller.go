package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
)

// CategoryProvider is the slice of the category repository the controller
// needs.
type CategoryProvider interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, category *models.Category) error
}

// CategoryController exposes thin read/create endpoints over categories.
type CategoryController struct {
	repo CategoryProvider
}

func NewCategoryController(repo CategoryProvider) *CategoryController {
	return &CategoryController{repo: repo}
}

// List handles GET /categories.
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.repo.FindAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = toCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Create handles POST /categories.
func (cc *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.NewValidation("Invalid JSON body"))
		return
	}
	if err := validatePayload(&req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	exists, err := cc.repo.ExistsByCode(c.Request.Context(), req.Code)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if exists {
		apperrors.Respond(c, apperrors.NewAlreadyExists("Category", "code", req.Code))
		return
	}

	category := &models.Category{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		ParentCode:  req.ParentCode,
	}
	if err := cc.repo.Create(c.Request.Context(), category); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(category))
}
