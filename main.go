package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarthakm19/product-catalog-service/controllers"
	"github.com/sarthakm19/product-catalog-service/database"
	"github.com/sarthakm19/product-catalog-service/logger"
	"github.com/sarthakm19/product-catalog-service/models"
	"github.com/sarthakm19/product-catalog-service/repository"
	"github.com/sarthakm19/product-catalog-service/routes"
	"github.com/sarthakm19/product-catalog-service/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	zlog := logger.Initialize(cfg.AppEnv)
	defer zlog.Sync()

	db, err := database.Connect(cfg.Postgres.DSN())
	if err != nil {
		zlog.Fatal("Could not connect to PostgreSQL", zap.Error(err))
	}

	if err := models.Migrate(db); err != nil {
		zlog.Fatal("Migration failed", zap.Error(err))
	}
	if err := models.SeedUsers(db); err != nil {
		zlog.Fatal("User seeding failed", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
	cache := services.NewCacheManager(redisClient)

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTLMilli)
	authService := services.NewAuthService(userRepo, tokenService)
	productService := services.NewProductService(db, productRepo, categoryRepo, catalogRepo, cache)

	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryRepo)
	catalogController := controllers.NewCatalogController(catalogRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.Register(r, tokenService, authController, productController, categoryController, catalogController)

	zlog.Info("Product catalog service started", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Error starting server", zap.Error(err))
	}
}
