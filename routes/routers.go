package routes

import (
	"boutic/constants"
	"boutic/controllers"
	middlewares "boutic/middleware"
	"boutic/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes câble la surface HTTP des ventes flash.
func SetupRoutes(router *gin.Engine, svc *services.FlashSaleService, redisCli *redis.Client) {
	flashSaleController := controllers.NewFlashSaleController(svc)

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())
	api.Use(middlewares.RequestLogMiddleware())

	// Toutes les routes ventes flash, publiques comme admin, passent par
	// le même rate limiting et la même épuration HTML.
	flashSales := api.Group("/flash-sales")
	flashSales.Use(middlewares.RateLimitMiddleware(redisCli))
	flashSales.Use(middlewares.SanitizeMiddleware())

	flashSales.GET("/active-all", flashSaleController.GetActiveFlashSales)
	flashSales.GET("/banniere-products", flashSaleController.GetBanniereProducts)
	flashSales.GET("/active", flashSaleController.GetActiveFlashSale)
	flashSales.GET("/:id", flashSaleController.GetFlashSaleDetail)
	flashSales.GET("/:id/products", flashSaleController.GetFlashSaleProducts)

	flashSales.GET("/", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.GetFlashSales)
	flashSales.POST("/", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.CreateFlashSale)
	flashSales.PUT("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.UpdateFlashSale)
	flashSales.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.DeleteFlashSale)
	flashSales.POST("/:id/activate", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.ActivateFlashSale)
	flashSales.POST("/:id/deactivate", middlewares.AuthMiddleware(constants.RoleAdmin), flashSaleController.DeactivateFlashSale)
}
