package router

import (
	"time"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, logRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc, cfg.UploadDir)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	products := r.Group("/api/products")
	{
		products.GET("", productsH.List)
		products.GET("/search", productsH.Search)
		products.GET("/export", productsH.Export)
		products.POST("/import", productsH.Import)
		products.PUT("/:id", productsH.Update)
		products.GET("/:id/history", productsH.History)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
