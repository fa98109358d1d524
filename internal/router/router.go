package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studioportal/internal/handler"
	"studioportal/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	packageH *handler.PackageHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Packages
	packages := v1.Group("/packages")
	packages.POST("", packageH.Create)
	packages.GET("", packageH.List)
	packages.GET("/:id", packageH.GetByID)
	packages.PUT("/:id", packageH.Update)
	packages.DELETE("/:id", packageH.Delete)
	packages.POST("/:id/quote", packageH.Quote)
	packages.GET("/:id/price-sheet", packageH.ExportPriceSheet)

	// Items
	items := packages.Group("/:id/items")
	items.POST("", packageH.AddItem)
	items.PUT("/:itemId", packageH.UpdateItem)
	items.DELETE("/:itemId", packageH.RemoveItem)
	items.PUT("/:itemId/kind", packageH.SwitchItemKind)

	// Tier editor
	tiers := items.Group("/:itemId/tiers")
	tiers.GET("", packageH.DescribeTiers)
	tiers.DELETE("", packageH.DeleteTier)
	tiers.POST("/:index/insert-above", packageH.InsertTierAbove)
	tiers.POST("/:index/insert-below", packageH.InsertTierBelow)
	tiers.PUT("/:index/quantity", packageH.EditTierQuantity)
	tiers.PUT("/:index/price", packageH.EditTierPrice)

	return r
}
