package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakm19/product-catalog-service/apperrors"
	"github.com/sarthakm19/product-catalog-service/models"
)

// CatalogProvider is the slice of the catalog repository the controller
// needs.
type CatalogProvider interface {
	FindAll(ctx context.Context) ([]models.Catalog, error)
}

// CatalogController exposes a read endpoint over catalogs.
type CatalogController struct {
	repo CatalogProvider
}

func NewCatalogController(repo CatalogProvider) *CatalogController {
	return &CatalogController{repo: repo}
}

// List handles GET /catalogs.
func (cc *CatalogController) List(c *gin.Context) {
	catalogs, err := cc.repo.FindAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	responses := make([]CatalogResponse, len(catalogs))
	for i := range catalogs {
		responses[i] = toCatalogResponse(&catalogs[i])
	}
	c.JSON(http.StatusOK, responses)
}
