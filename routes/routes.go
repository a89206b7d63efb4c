package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarthakm19/product-catalog-service/controllers"
	"github.com/sarthakm19/product-catalog-service/middleware"
	"github.com/sarthakm19/product-catalog-service/services"
)

// Register wires all API routes. Everything except login sits behind the
// bearer-token guard.
func Register(
	r *gin.Engine,
	tokens *services.TokenService,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	categories *controllers.CategoryController,
	catalogs *controllers.CatalogController,
) {
	v1 := r.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Use(middleware.RateLimit())
	{
		authRoutes.POST("/login", auth.Login)
	}

	productRoutes := v1.Group("/products")
	productRoutes.Use(middleware.RequireAuth(tokens))
	{
		productRoutes.GET("", products.List)
		productRoutes.POST("", products.Create)
		productRoutes.POST("/batch", products.CreateBatch)
		productRoutes.DELETE("/batch", products.DeleteBatch)
		productRoutes.GET("/:code", products.GetByCode)
		productRoutes.PUT("/:code", products.Update)
		productRoutes.PATCH("/:code", products.Patch)
		productRoutes.DELETE("/:code", products.Delete)
	}

	categoryRoutes := v1.Group("/categories")
	categoryRoutes.Use(middleware.RequireAuth(tokens))
	{
		categoryRoutes.GET("", categories.List)
		categoryRoutes.POST("", categories.Create)
	}

	catalogRoutes := v1.Group("/catalogs")
	catalogRoutes.Use(middleware.RequireAuth(tokens))
	{
		catalogRoutes.GET("", catalogs.List)
	}
}
