package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"tire-shop/config"
	"tire-shop/controllers"
	"tire-shop/middleware"
	"tire-shop/models"
	"tire-shop/repositories"
	"tire-shop/routes"
	"tire-shop/services"
	"tire-shop/utils"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		catalogRepo := repositories.NewCatalogRepository(config.AppConfig.CatalogPath)
		if err := catalogRepo.Load(); err != nil {
			log.Printf("Catalog load failed: %v", err)
		}

		var cartStore repositories.CartStore
		if models.RedisClient != nil {
			cartStore = repositories.NewRedisCartStore(models.RedisClient, config.AppConfig.CartTTL)
		} else if fileStore, err := repositories.NewFileCartStore(config.AppConfig.CartDir); err == nil {
			cartStore = fileStore
		} else {
			log.Printf("File cart store init failed: %v", err)
			log.Println("Falling back to in-memory cart store")
			cartStore = repositories.NewMemoryCartStore()
		}

		notifier := utils.NewNotifier(utils.DefaultNotificationTTL)
		cartService := services.NewCartService(catalogRepo, cartStore, notifier)

		catalogCtrl := controllers.NewCatalogController(services.NewCatalogService(catalogRepo))
		cartCtrl := controllers.NewCartController(cartService, notifier)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, catalogCtrl, cartCtrl)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
