// @title CocoBakes Order API
// @version 1.0
// @description Backend for the CocoBakes storefront: catalog, offers banner, brownie builder and contact form
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wizreet/cocobakes/config"
	"github.com/wizreet/cocobakes/controllers/catalog_controller"
	"github.com/wizreet/cocobakes/controllers/configurator_controller"
	"github.com/wizreet/cocobakes/middleware"
	"github.com/wizreet/cocobakes/routes"
	"github.com/wizreet/cocobakes/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Load the catalog registry once; it is read-only from here on
	ctx, cancel := config.WithTimeout()
	catalog := services.LoadCatalog(ctx, config.Gorm)
	cancel()

	// Wire the configurator core: explicit construction, no singletons
	// inside the core itself
	sessionStore := services.NewRedisSessionStore(config.RedisClient)
	dispatcher := services.NewDispatchService()
	msgOpts := services.MessageOptionsFromEnv()

	catalog_controller.Init(catalog)
	configurator_controller.Init(sessionStore, catalog, dispatcher, msgOpts)
	log.Println("✅ Configurator initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://cocobakes.shop"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // for the order slip PDF
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	routes.SetupHealthRoutes(router)

	// Register API routes
	api := router.Group("/api/v1")

	routes.SetupStorefrontRoutes(api)
	routes.SetupConfiguratorRoutes(api)

	// Contact form gets a tighter limit than the rest of the API
	contact := api.Group("")
	contact.Use(middleware.RateLimiter(config.RedisClient, 10, time.Minute))
	routes.SetupContactRoutes(contact)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
