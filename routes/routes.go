package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tire-shop/controllers"
	"tire-shop/middleware"
)

func SetupRoutes(router *gin.Engine, catalogCtrl *controllers.CatalogController, cartCtrl *controllers.CartController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", catalogCtrl.GetAllProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)
	router.GET("/brands", catalogCtrl.GetBrands)

	cart := router.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.GET("/count", cartCtrl.GetCartCount)
		cart.GET("/notifications", cartCtrl.GetNotifications)
		cart.POST("/items", cartCtrl.AddToCart)
	}
}
