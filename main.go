package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tire-shop/config"
	"tire-shop/controllers"
	_ "tire-shop/docs"
	"tire-shop/middleware"
	"tire-shop/models"
	"tire-shop/repositories"
	"tire-shop/routes"
	"tire-shop/services"
	"tire-shop/utils"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	catalogRepo := repositories.NewCatalogRepository(config.AppConfig.CatalogPath)
	if err := catalogRepo.Load(); err != nil {
		log.Printf("Catalog load failed: %v", err)
		log.Println("Requests will be answered with the catalog error message")
	} else {
		log.Printf("Catalog loaded from %s", config.AppConfig.CatalogPath)
	}

	cartStore, err := buildCartStore()
	if err != nil {
		log.Fatalf("Failed to initialize cart store: %v", err)
	}

	notifier := utils.NewNotifier(utils.DefaultNotificationTTL)

	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(catalogRepo, cartStore, notifier)

	catalogCtrl := controllers.NewCatalogController(catalogService)
	cartCtrl := controllers.NewCartController(cartService, notifier)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, catalogCtrl, cartCtrl)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildCartStore() (repositories.CartStore, error) {
	if config.AppConfig.CartBackend == "redis" && models.RedisClient != nil {
		log.Println("Using Redis cart store")
		return repositories.NewRedisCartStore(models.RedisClient, config.AppConfig.CartTTL), nil
	}

	log.Printf("Using file cart store at %s", config.AppConfig.CartDir)
	return repositories.NewFileCartStore(config.AppConfig.CartDir)
}
